// Package config resolves ghstats settings from layered sources.
//
// Precedence, lowest first:
//
//  1. built-in defaults
//  2. a TOML file: the explicit --config path, else ./ghstats.toml, else
//     $XDG_CONFIG_HOME/ghstats/config.toml
//  3. a .env file (values never override the real environment)
//  4. the process environment
//  5. command-line flags, applied by the caller
//
// Example ghstats.toml:
//
//	username = "octocat"
//	theme = "light"
//	output = "assets/github-stats.svg"
//	cache_ttl = "6h"
//
//	[server]
//	addr = ":8080"
//	redis_url = "redis://localhost:6379/0"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/ghstats/pkg/errors"
)

// Environment variable names.
const (
	EnvUsername = "GITHUB_USERNAME"
	EnvToken    = "GITHUB_TOKEN"
	EnvAPIURL   = "GHSTATS_API_URL"
	EnvTheme    = "GHSTATS_THEME"
	EnvOutput   = "GHSTATS_OUTPUT"
	EnvCacheTTL = "GHSTATS_CACHE_TTL"
	EnvRedisURL = "GHSTATS_REDIS_URL"
	EnvAddr     = "GHSTATS_ADDR"
)

// Defaults.
const (
	DefaultAPIURL   = "https://api.github.com"
	DefaultTheme    = "dark"
	DefaultOutput   = "assets/github-stats.svg"
	DefaultCacheTTL = 6 * time.Hour
	DefaultAddr     = ":8080"

	appName  = "ghstats"
	fileName = "ghstats.toml"
)

// Config holds the resolved settings.
type Config struct {
	Username string   `toml:"username"`
	Token    string   `toml:"token"`
	APIURL   string   `toml:"api_url"`
	Theme    string   `toml:"theme"`
	Output   string   `toml:"output"`
	CacheTTL Duration `toml:"cache_ttl"`
	Server   Server   `toml:"server"`

	// File is the TOML file that was loaded, empty if none.
	File string `toml:"-"`
}

// Server holds the settings of the HTTP server.
type Server struct {
	Addr     string `toml:"addr"`
	RedisURL string `toml:"redis_url"`
}

// Duration is a time.Duration decoded from strings such as "90m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		APIURL:   DefaultAPIURL,
		Theme:    DefaultTheme,
		Output:   DefaultOutput,
		CacheTTL: Duration{DefaultCacheTTL},
		Server:   Server{Addr: DefaultAddr},
	}
}

// Options controls where Load looks.
type Options struct {
	// Path is an explicit TOML file; it must exist when set.
	Path string
	// EnvFile is the dotenv file; ".env" when empty. A missing file is fine.
	EnvFile string
	// Dir is the directory searched for ghstats.toml; the working directory
	// when empty.
	Dir string
	// Getenv reads the environment; os.Getenv when nil.
	Getenv func(string) string
}

// Load resolves the configuration. It does not validate required values;
// call Validate or ValidateCredentials once flags are applied.
func Load(opts Options) (Config, error) {
	cfg := Default()

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	path, err := findFile(opts, getenv)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
		cfg.File = path
	}

	dotenv, err := readDotenv(opts.EnvFile)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func findFile(opts Options, getenv func(string) string) (string, error) {
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return "", errors.Wrap(errors.ErrCodeConfiguration, err, "config file %s", opts.Path)
		}
		return opts.Path, nil
	}

	candidates := []string{filepath.Join(opts.Dir, fileName)}
	if dir := configHome(getenv); dir != "" {
		candidates = append(candidates, filepath.Join(dir, appName, "config.toml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", nil
}

func configHome(getenv func(string) string) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfiguration, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeConfiguration, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "read %s", path)
	}
	return values, nil
}

func (c *Config) applyEnv(lookup func(string) string) error {
	set := func(dst *string, key string) {
		if v := lookup(key); v != "" {
			*dst = v
		}
	}
	set(&c.Username, EnvUsername)
	set(&c.Token, EnvToken)
	set(&c.APIURL, EnvAPIURL)
	set(&c.Theme, EnvTheme)
	set(&c.Output, EnvOutput)
	set(&c.Server.RedisURL, EnvRedisURL)
	set(&c.Server.Addr, EnvAddr)

	if v := lookup(EnvCacheTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeConfiguration, err, "%s", EnvCacheTTL)
		}
		c.CacheTTL = Duration{d}
	}
	return nil
}

// Validate checks everything a full generate run needs: the account and
// the credential. All missing values are reported in one error.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Username) == "" {
		missing = append(missing, EnvUsername)
	}
	if strings.TrimSpace(c.Token) == "" {
		missing = append(missing, EnvToken)
	}
	if len(missing) > 0 {
		return missingError(missing)
	}
	if err := errors.ValidateUsername(c.Username); err != nil {
		return err
	}
	return c.validateCommon()
}

// ValidateCredentials checks what the server needs: the credential only,
// since the account comes from each request.
func (c Config) ValidateCredentials() error {
	if strings.TrimSpace(c.Token) == "" {
		return missingError([]string{EnvToken})
	}
	return c.validateCommon()
}

func (c Config) validateCommon() error {
	if err := errors.ValidateURL(c.APIURL); err != nil {
		return errors.Wrap(errors.ErrCodeConfiguration, err, "api_url")
	}
	if c.CacheTTL.Duration < 0 {
		return errors.New(errors.ErrCodeConfiguration, "cache_ttl must not be negative")
	}
	return nil
}

func missingError(keys []string) error {
	return errors.New(errors.ErrCodeConfiguration, "missing required configuration: %s", strings.Join(keys, ", "))
}

// Redacted returns a copy with the credential masked, for logging.
func (c Config) Redacted() Config {
	if c.Token != "" {
		c.Token = fmt.Sprintf("%s… (%d chars)", c.Token[:min(4, len(c.Token))], len(c.Token))
	}
	return c
}
