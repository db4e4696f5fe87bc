package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ghstats/pkg/config"
	"github.com/matzehuels/ghstats/pkg/io"
	"github.com/matzehuels/ghstats/pkg/observability"
	"github.com/matzehuels/ghstats/pkg/render"
	"github.com/matzehuels/ghstats/pkg/render/card"
	"github.com/matzehuels/ghstats/pkg/render/theme"
	"github.com/matzehuels/ghstats/pkg/stats"
)

// Runner executes the pipeline against a Source.
//
// The Runner is stateless except for the source and logger; it doesn't
// store results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Source Source
	Logger *log.Logger
	// Now supplies the fetch time and the streak's reference day.
	Now func() time.Time
	// Rasterize converts the card to PNG at the given scale.
	Rasterize func(ctx context.Context, svg []byte, scale float64) ([]byte, error)
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(src Source, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Source: src, Logger: logger, Now: time.Now, Rasterize: render.ToPNG}
}

// Collect fetches the four payloads for login concurrently and aggregates
// them. The first failure cancels the remaining fetches and fails the whole
// collection; there is no partial result.
func (r *Runner) Collect(ctx context.Context, login string, refresh bool) (stats.Stats, error) {
	hooks := observability.Pipeline()
	hooks.OnCollectStart(ctx, login)
	start := time.Now()

	s, err := r.collect(ctx, login, refresh)

	elapsed := time.Since(start)
	hooks.OnCollectComplete(ctx, login, elapsed, err)
	if err != nil {
		return stats.Stats{}, err
	}

	r.Logger.Info("collected stats",
		"user", login,
		"repos", s.PublicRepos,
		"days", len(s.Days),
		"languages", len(s.Languages),
		"duration", elapsed.Round(time.Millisecond))
	return s, nil
}

func (r *Runner) collect(ctx context.Context, login string, refresh bool) (stats.Stats, error) {
	var in stats.Input
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := r.Source.Profile(gctx, login, refresh)
		in.Profile = p
		return err
	})
	g.Go(func() error {
		repos, err := r.Source.Repositories(gctx, login, refresh)
		in.Repositories = repos
		return err
	})
	g.Go(func() error {
		c, err := r.Source.Contributions(gctx, login, refresh)
		in.Contributions = c
		return err
	})
	g.Go(func() error {
		tags, err := r.Source.LanguageTags(gctx, login, refresh)
		in.LanguageTags = tags
		return err
	})

	if err := g.Wait(); err != nil {
		return stats.Stats{}, err
	}
	r.Logger.Debug("fetched payloads",
		"user", login,
		"repositories", len(in.Repositories),
		"language_tags", len(in.LanguageTags))

	return stats.Aggregate(login, in, r.now())
}

// Render draws s with the named palette.
func (r *Runner) Render(ctx context.Context, s stats.Stats, name theme.Name) []byte {
	start := time.Now()
	doc := card.Render(s, name)
	elapsed := time.Since(start)

	observability.Pipeline().OnRenderComplete(ctx, string(theme.Resolve(name)), len(doc), elapsed)
	r.Logger.Debug("rendered card", "theme", theme.Resolve(name), "bytes", len(doc), "duration", elapsed)
	return doc
}

// Generate validates cfg, then collects, renders and writes the card to
// cfg.Output. Configuration errors are reported before any request is made.
func (r *Runner) Generate(ctx context.Context, cfg config.Config, opts Options) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	name, err := theme.Parse(cfg.Theme)
	if err != nil {
		return nil, err
	}

	res := &Result{Theme: name, Output: cfg.Output}

	start := time.Now()
	s, err := r.Collect(ctx, cfg.Username, opts.Refresh)
	if err != nil {
		return nil, err
	}
	res.Stats = s
	res.Timing.Collect = time.Since(start)

	start = time.Now()
	res.Document = r.Render(ctx, s, name)
	res.Timing.Render = time.Since(start)

	var png []byte
	if opts.PNG {
		scale := opts.PNGScale
		if scale == 0 {
			scale = 2
		}
		if png, err = r.rasterize(ctx, res.Document, scale); err != nil {
			return nil, err
		}
	}

	// The PNG goes first so a failed write leaves neither file behind.
	if opts.PNG {
		pngPath := PNGPath(cfg.Output)
		if err := io.WriteDocument(pngPath, png); err != nil {
			return nil, err
		}
		r.Logger.Debug("wrote document", "path", pngPath)
		res.PNG = pngPath
	}

	if err := io.WriteDocument(cfg.Output, res.Document); err != nil {
		if res.PNG != "" {
			os.Remove(res.PNG)
		}
		return nil, err
	}
	r.Logger.Debug("wrote document", "path", cfg.Output)
	return res, nil
}

func (r *Runner) rasterize(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if r.Rasterize == nil {
		return render.ToPNG(ctx, svg, scale)
	}
	return r.Rasterize(ctx, svg, scale)
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
