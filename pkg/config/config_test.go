package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/ghstats/pkg/errors"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(Options{
		Dir:     dir,
		EnvFile: "",
		Getenv:  envMap(map[string]string{"XDG_CONFIG_HOME": dir}),
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ghstats.toml"), `
username = "from-file"
theme = "light"
output = "file.svg"
cache_ttl = "30m"

[server]
addr = ":9000"
`)
	envFile := filepath.Join(dir, "test.env")
	writeFile(t, envFile, "GITHUB_TOKEN=from-dotenv\nGHSTATS_OUTPUT=dotenv.svg\nGITHUB_USERNAME=from-dotenv\n")

	cfg, err := Load(Options{
		Dir:     dir,
		EnvFile: envFile,
		Getenv: envMap(map[string]string{
			"XDG_CONFIG_HOME": dir,
			EnvUsername:       "from-env",
		}),
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		name, got, want string
	}{
		{"username env beats dotenv and file", cfg.Username, "from-env"},
		{"token from dotenv", cfg.Token, "from-dotenv"},
		{"output dotenv beats file", cfg.Output, "dotenv.svg"},
		{"theme from file", cfg.Theme, "light"},
		{"addr from file", cfg.Server.Addr, ":9000"},
		{"api url default", cfg.APIURL, DefaultAPIURL},
		{"file recorded", cfg.File, filepath.Join(dir, "ghstats.toml")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if cfg.CacheTTL.Duration != 30*time.Minute {
		t.Errorf("CacheTTL = %v, want 30m", cfg.CacheTTL)
	}
}

func TestLoadXDGConfig(t *testing.T) {
	dir := t.TempDir()
	xdg := filepath.Join(dir, "xdg")
	writeFile(t, filepath.Join(xdg, "ghstats", "config.toml"), `theme = "light"`)

	cfg, err := Load(Options{Dir: dir, Getenv: envMap(map[string]string{"XDG_CONFIG_HOME": xdg})})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light from XDG config", cfg.Theme)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, `username = `)
	unknown := filepath.Join(dir, "unknown.toml")
	writeFile(t, unknown, "username = \"x\"\ncolour = \"red\"\n")

	tests := []struct {
		name string
		opts Options
		msg  string
	}{
		{"missing explicit file", Options{Path: filepath.Join(dir, "nope.toml")}, "nope.toml"},
		{"invalid toml", Options{Path: bad}, "parse"},
		{"unknown key", Options{Path: unknown}, "colour"},
		{"missing explicit env file", Options{Dir: dir, EnvFile: filepath.Join(dir, "nope.env")}, "nope.env"},
		{"bad ttl", Options{Dir: dir, Getenv: envMap(map[string]string{EnvCacheTTL: "soon", "XDG_CONFIG_HOME": dir})}, EnvCacheTTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opts.Getenv == nil {
				tt.opts.Getenv = envMap(map[string]string{"XDG_CONFIG_HOME": dir})
			}
			_, err := Load(tt.opts)
			if !errors.Is(err, errors.ErrCodeConfiguration) {
				t.Fatalf("Load() error = %v, want CONFIGURATION", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q should mention %q", err, tt.msg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		token    string
		code     errors.Code
		mention  []string
	}{
		{"ok", "octocat", "t", "", nil},
		{"missing both", "", "", errors.ErrCodeConfiguration, []string{EnvUsername, EnvToken}},
		{"missing token", "octocat", " ", errors.ErrCodeConfiguration, []string{EnvToken}},
		{"missing username", "", "t", errors.ErrCodeConfiguration, []string{EnvUsername}},
		{"bad username", "-bad-", "t", errors.ErrCodeInvalidUsername, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Username = tt.username
			cfg.Token = tt.token
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("Validate() error = %v, want %s", err, tt.code)
			}
			for _, m := range tt.mention {
				if !strings.Contains(err.Error(), m) {
					t.Errorf("error %q should mention %s", err, m)
				}
			}
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	cfg := Default()
	if err := cfg.ValidateCredentials(); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("ValidateCredentials() error = %v, want CONFIGURATION", err)
	}
	cfg.Token = "t"
	if err := cfg.ValidateCredentials(); err != nil {
		t.Errorf("ValidateCredentials() without username should pass: %v", err)
	}
	cfg.APIURL = "ftp://example.com"
	if err := cfg.ValidateCredentials(); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("ValidateCredentials() with bad URL = %v, want CONFIGURATION", err)
	}
}

func TestRedacted(t *testing.T) {
	cfg := Default()
	cfg.Token = "ghp_supersecret"
	r := cfg.Redacted()
	if strings.Contains(r.Token, "supersecret") {
		t.Errorf("Redacted() leaked the token: %q", r.Token)
	}
	if cfg.Token != "ghp_supersecret" {
		t.Error("Redacted() must not modify the receiver")
	}
}
