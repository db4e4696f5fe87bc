// Package pipeline provides the fetch → aggregate → render pipeline of ghstats.
//
// This package implements the pipeline shared by the CLI commands and the
// HTTP server. By centralizing this logic, every entry point validates,
// fetches, logs and reports metrics the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Collect: fetch profile, repositories, contributions and language tags
//     concurrently and aggregate them into a [stats.Stats]
//  2. Render: draw the aggregate as an SVG card
//  3. Write: persist the document (and optionally a PNG) to disk
//
// Each stage can be run independently or as part of [Runner.Generate].
//
// # Usage
//
//	gh := github.NewClient(github.Options{Token: cfg.Token})
//	runner := pipeline.NewRunner(gh, logger)
//	result, err := runner.Generate(ctx, cfg, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Output)
//
// [stats.Stats]: github.com/matzehuels/ghstats/pkg/stats.Stats
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/ghstats/pkg/render/theme"
	"github.com/matzehuels/ghstats/pkg/stats"
)

// Source fetches the upstream payloads an aggregate is built from.
// Implementations must be safe for concurrent use.
type Source interface {
	Profile(ctx context.Context, login string, refresh bool) (*stats.Profile, error)
	Repositories(ctx context.Context, login string, refresh bool) ([]stats.Repository, error)
	Contributions(ctx context.Context, login string, refresh bool) (*stats.ContributionsCollection, error)
	LanguageTags(ctx context.Context, login string, refresh bool) ([]string, error)
}

// Options tunes a Generate run beyond the configuration.
type Options struct {
	// Refresh bypasses the response cache.
	Refresh bool
	// PNG additionally rasterizes the card next to the SVG.
	PNG bool
	// PNGScale is the rasterization scale; 2 when zero.
	PNGScale float64
}

// Result is the outcome of a Generate run.
type Result struct {
	Stats    stats.Stats
	Theme    theme.Name
	Document []byte
	Output   string
	PNG      string
	Timing   Timing
}

// Timing records how long each stage took.
type Timing struct {
	Collect time.Duration
	Render  time.Duration
}

// PNGPath returns the PNG path that accompanies an SVG output path.
func PNGPath(svgPath string) string { return sibling(svgPath, ".png") }

// PDFPath returns the PDF path that accompanies an SVG output path.
func PDFPath(svgPath string) string { return sibling(svgPath, ".pdf") }

func sibling(svgPath, ext string) string {
	if strings.HasSuffix(strings.ToLower(svgPath), ".svg") {
		return svgPath[:len(svgPath)-len(".svg")] + ext
	}
	return svgPath + ext
}
