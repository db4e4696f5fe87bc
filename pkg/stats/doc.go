// Package stats aggregates raw GitHub API payloads into a [Stats] record.
//
// [Aggregate] is the only constructor of [Stats]. It rolls up repository
// stars and forks, copies the pre-aggregated contribution counters, computes
// the contribution streak with [ComputeStreak] and ranks languages with
// [RankLanguages]. A [Stats] value is read-only once built and is the sole
// input of the renderer.
//
// All functions in this package are pure: time enters only through the
// explicit now/today arguments.
package stats
