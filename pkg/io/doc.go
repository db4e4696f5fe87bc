// Package io writes rendered documents and imports and exports stats
// snapshots.
//
// # Documents
//
// [WriteDocument] writes bytes to a path, creating missing parent
// directories. The file is written to a temporary sibling and renamed into
// place, so a failed run never leaves a truncated document behind.
//
// # Snapshots
//
// A snapshot is a versioned envelope around a [stats.Stats] aggregate:
//
//	version: 1
//	generator: ghstats/v1.0.0
//	stats:
//	  username: octocat
//	  followers: 1200
//	  ...
//
// The encoding is chosen from the file extension: .json for JSON, .yaml or
// .yml for YAML. Snapshots let a card be rendered again offline.
//
// All failures are coded errors: PERSISTENCE for filesystem failures,
// INVALID_FORMAT for unsupported extensions or versions and MALFORMED_DATA
// for undecodable content.
//
// [stats.Stats]: github.com/matzehuels/ghstats/pkg/stats.Stats
package io
