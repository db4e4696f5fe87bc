package cli

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghstats/internal/server"
	"github.com/matzehuels/ghstats/pkg/cache"
	"github.com/matzehuels/ghstats/pkg/config"
	"github.com/matzehuels/ghstats/pkg/errors"
	"github.com/matzehuels/ghstats/pkg/observability/prom"
	"github.com/matzehuels/ghstats/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	redisURL string
	apiURL   string
	maxAge   time.Duration
}

// serveCommand creates the serve command, which renders cards on demand
// at GET /{username}.svg.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{maxAge: server.DefaultMaxAge}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve cards over HTTP",
		Long: `Serve rendered cards over HTTP:

  GET /{username}.svg?theme=light|dark
  GET /healthz
  GET /metrics

Upstream responses are cached in Redis when --redis-url (or GHSTATS_REDIS_URL)
is set, otherwise in the local file cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default "+config.DefaultAddr+")")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "Redis URL for the shared response cache")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "GitHub API root (overrides "+config.EnvAPIURL+")")
	cmd.Flags().DurationVar(&opts.maxAge, "max-age", opts.maxAge, "Cache-Control max-age of served cards")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	cfg, err := config.Load(config.Options{Path: c.configPath, EnvFile: c.envFile})
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = opts.addr
	}
	if cmd.Flags().Changed("redis-url") {
		cfg.Server.RedisURL = opts.redisURL
	}
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = opts.apiURL
	}
	if err := cfg.ValidateCredentials(); err != nil {
		return err
	}

	ch, err := c.serverCache(cmd, cfg)
	if err != nil {
		return err
	}
	defer ch.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	hooks, err := prom.New(reg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "register metrics")
	}
	hooks.Install()

	srv := server.New(server.Options{
		Runner:   pipeline.NewRunner(newGitHubClient(cfg, ch), c.Logger),
		Logger:   c.Logger,
		Gatherer: reg,
		MaxAge:   opts.maxAge,
	})

	printInfo("Serving cards on %s", StyleLink.Render("http://"+displayAddr(cfg.Server.Addr)+"/{username}.svg"))
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

func (c *CLI) serverCache(cmd *cobra.Command, cfg config.Config) (cache.Cache, error) {
	if c.noCache {
		printWarning("Response cache disabled: every request reaches the GitHub API")
		return cache.NewNullCache(), nil
	}
	if cfg.Server.RedisURL != "" {
		rc, err := cache.NewRedisCache(cmd.Context(), cfg.Server.RedisURL, appName+":")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "redis cache")
		}
		printKeyValue("Cache", "redis")
		return rc, nil
	}
	ch, err := newCache(false)
	if err == nil {
		printKeyValue("Cache", "file")
	}
	return ch, err
}

// displayAddr fills in the host of a ":port" listen address.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
