// Package pkg provides the libraries behind ghstats.
//
// # Overview
//
// ghstats turns a GitHub account's public activity into a static SVG card.
// The pkg directory is organized into these areas:
//
//  1. [integrations] - GitHub REST and GraphQL clients with response caching
//  2. [stats] - the Aggregator: rollups, streaks, language ranking, formatting
//  3. [render] - the Renderer: the card, its themes and PNG/PDF conversion
//  4. [pipeline] - Orchestration (collect → aggregate → render → write)
//  5. [io], [config], [cache], [errors], [observability] - infrastructure
//
// # Architecture
//
// The data flow through ghstats:
//
//	GitHub REST + GraphQL
//	         ↓
//	    [integrations/github] (profile, repositories, contributions, tags)
//	         ↓
//	    [stats] (Aggregate → stats.Stats)
//	         ↓
//	    [render/card] (Render → SVG bytes)
//	         ↓
//	    [io] (WriteDocument → assets/github-stats.svg)
//
// stats.Stats is the only contract between the Aggregator and the Renderer.
//
// # Quick Start
//
//	gh := github.NewClient(github.Options{Token: os.Getenv("GITHUB_TOKEN")})
//	runner := pipeline.NewRunner(gh, nil)
//
//	s, err := runner.Collect(ctx, "octocat", false)
//	if err != nil {
//	    return err
//	}
//	svg := card.Render(s, theme.Dark)
//
// [integrations]: github.com/matzehuels/ghstats/pkg/integrations
// [stats]: github.com/matzehuels/ghstats/pkg/stats
// [render]: github.com/matzehuels/ghstats/pkg/render
// [pipeline]: github.com/matzehuels/ghstats/pkg/pipeline
// [io]: github.com/matzehuels/ghstats/pkg/io
// [config]: github.com/matzehuels/ghstats/pkg/config
// [cache]: github.com/matzehuels/ghstats/pkg/cache
// [errors]: github.com/matzehuels/ghstats/pkg/errors
// [observability]: github.com/matzehuels/ghstats/pkg/observability
package pkg
