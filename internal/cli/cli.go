package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghstats/pkg/buildinfo"
	"github.com/matzehuels/ghstats/pkg/cache"
	"github.com/matzehuels/ghstats/pkg/config"
	"github.com/matzehuels/ghstats/pkg/errors"
	"github.com/matzehuels/ghstats/pkg/integrations/github"
	"github.com/matzehuels/ghstats/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "ghstats"

	// defaultSnapshot is where fetch writes when no --output is given.
	defaultSnapshot = "github-stats.json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Global flags, bound by RootCommand.
	configPath string
	envFile    string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ghstats renders GitHub activity stats as an SVG card",
		Long:         `ghstats fetches a GitHub account's public activity (followers, stars, forks, contributions, streaks and languages) and renders it as a static, themed SVG card for embedding in a README.`,
		Version:      buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./ghstats.toml or $XDG_CONFIG_HOME/ghstats/config.toml)")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", "", "dotenv file (default .env)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the HTTP response cache")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// configFlags are the per-command flags that override the loaded config.
type configFlags struct {
	username  string
	theme     string
	output    string
	apiURL    string
	hasOutput bool
}

// bind registers the flags a command accepts. Output is optional since not
// every command writes a card.
func (f *configFlags) bind(cmd *cobra.Command, output bool) {
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "GitHub account (overrides "+config.EnvUsername+")")
	cmd.Flags().StringVarP(&f.theme, "theme", "t", "", "card theme: dark (default), light")
	cmd.Flags().StringVar(&f.apiURL, "api-url", "", "GitHub API root (overrides "+config.EnvAPIURL+")")
	if output {
		cmd.Flags().StringVarP(&f.output, "output", "o", "", "output path (default "+config.DefaultOutput+")")
		f.hasOutput = true
	}
}

// loadConfig resolves the configuration and applies the flags that were set.
func (c *CLI) loadConfig(cmd *cobra.Command, f *configFlags) (config.Config, error) {
	cfg, err := config.Load(config.Options{Path: c.configPath, EnvFile: c.envFile})
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("username") {
		cfg.Username = f.username
	}
	if flags.Changed("theme") {
		cfg.Theme = f.theme
	}
	if f.hasOutput && flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("api-url") {
		cfg.APIURL = f.apiURL
	}

	if cfg.File != "" {
		c.Logger.Debug("loaded config", "file", cfg.File)
	}
	c.Logger.Debug("resolved config", "config", cfg.Redacted())
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the GitHub API. The
// returned cache must be closed by the caller.
func (c *CLI) newRunner(cfg config.Config) (*pipeline.Runner, cache.Cache, error) {
	ch, err := newCache(c.noCache)
	if err != nil {
		return nil, nil, err
	}
	return pipeline.NewRunner(newGitHubClient(cfg, ch), c.Logger), ch, nil
}

// newGitHubClient creates an API client whose cache keys are scoped by the
// credential, so different tokens never share responses.
func newGitHubClient(cfg config.Config, ch cache.Cache) *github.Client {
	return github.NewClient(github.Options{
		BaseURL: cfg.APIURL,
		Token:   cfg.Token,
		Cache:   ch,
		Keyer:   cache.NewScopedKeyer(cache.NewDefaultKeyer(), cache.TokenScope(cfg.Token)),
		TTL:     cfg.CacheTTL.Duration,
	})
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "open cache %s", dir)
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/ghstats/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
