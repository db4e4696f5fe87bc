package stats

import (
	"slices"
	"time"
)

// ComputeStreak walks the days from the most recent backwards.
//
// A run grows on every day with a positive count and ends on a zero day or
// a missing date. Max is the longest run. Current is the run that reaches
// today: a positive first day always counts, and the walk keeps extending it
// while unbroken when the first day lies within one calendar day of today in
// either direction. A calendar published in UTC can run a day ahead of a host
// west of UTC. A zero count for the first day does not end the current streak
// when that day is today or later, since it is not over yet.
//
// Dates are compared by calendar day; today's calendar day is taken in
// today's own location.
func ComputeStreak(days []ContributionDay, today time.Time) StreakSummary {
	var s StreakSummary
	sorted := sortedDesc(days)
	if len(sorted) == 0 {
		return s
	}

	ref := midnight(today)
	head := daysBetween(midnight(sorted[0].Date), ref)
	live := head >= -1 && head <= 1

	run := 0
	for i, d := range sorted {
		if i > 0 && daysBetween(midnight(d.Date), midnight(sorted[i-1].Date)) != 1 {
			run = 0
			live = false
		}
		if d.Count <= 0 {
			run = 0
			if i > 0 || head > 0 {
				live = false
			}
			continue
		}
		run++
		if live || i == 0 {
			s.Current = run
		}
		s.Max = max(s.Max, run)
	}
	return s
}

func sortedDesc(days []ContributionDay) []ContributionDay {
	sorted := slices.Clone(days)
	slices.SortStableFunc(sorted, func(a, b ContributionDay) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
