package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "vocab.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// validConfig returns a Config that passes Validate.
func validConfig() Config {
	return Config{
		WordNet: WordNetConfig{
			Path:            "./data/english-wordnet.json.gz",
			DownloadTimeout: 5 * time.Minute,
		},
		Vocab: VocabConfig{Mode: "aggregate", Labels: "name", RunTimeout: 30 * time.Minute},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

const validYAML = `
wordnet:
  path: "/srv/wordnet/oewn-2024"
  download_url: ""
  download_timeout: "2m"

vocab:
  mode: "pairs"
  labels: "tag"
  run_timeout: "10m"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 8
  min_conns: 2
  batch_size: 250

log:
  level: "debug"
  format: "json"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// WordNet
	if cfg.WordNet.Path != "/srv/wordnet/oewn-2024" {
		t.Errorf("wordnet.path = %q", cfg.WordNet.Path)
	}
	if cfg.WordNet.DownloadTimeout != 2*time.Minute {
		t.Errorf("wordnet.download_timeout = %v, want 2m", cfg.WordNet.DownloadTimeout)
	}

	// Vocab
	if cfg.Vocab.Mode != "pairs" {
		t.Errorf("vocab.mode = %q, want pairs", cfg.Vocab.Mode)
	}
	if cfg.Vocab.Labels != "tag" {
		t.Errorf("vocab.labels = %q, want tag", cfg.Vocab.Labels)
	}
	if cfg.Vocab.RunTimeout != 10*time.Minute {
		t.Errorf("vocab.run_timeout = %v, want 10m", cfg.Vocab.RunTimeout)
	}

	// Database
	if !cfg.Database.Enabled() {
		t.Error("database should be enabled when dsn is set")
	}
	if cfg.Database.MaxConns != 8 {
		t.Errorf("database.max_conns = %d, want 8", cfg.Database.MaxConns)
	}
	if cfg.Database.BatchSize != 250 {
		t.Errorf("database.batch_size = %d, want 250", cfg.Database.BatchSize)
	}

	// Log
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("VOCAB_MODE", "words")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Vocab.Mode != "words" {
		t.Errorf("vocab.mode = %q, want words (ENV override)", cfg.Vocab.Mode)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")
	// Set working dir to a temp dir with no vocab.yaml
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Vocab.Mode != "aggregate" {
		t.Errorf("vocab.mode = %q, want aggregate (default)", cfg.Vocab.Mode)
	}
	if cfg.Vocab.Labels != "name" {
		t.Errorf("vocab.labels = %q, want name (default)", cfg.Vocab.Labels)
	}
	if cfg.WordNet.Path != "./data/english-wordnet.json.gz" {
		t.Errorf("wordnet.path = %q (default)", cfg.WordNet.Path)
	}
	if cfg.WordNet.DownloadURL == "" {
		t.Error("wordnet.download_url should have a default")
	}
	if cfg.Database.Enabled() {
		t.Error("database should be disabled without dsn")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/vocab.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_InvalidMode(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "vocab:\n  mode: \"merge\"\n")
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error for unknown vocab.mode")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "empty wordnet path", mutate: func(c *Config) { c.WordNet.Path = " " }},
		{name: "zero download timeout", mutate: func(c *Config) { c.WordNet.DownloadTimeout = 0 }},
		{name: "unknown mode", mutate: func(c *Config) { c.Vocab.Mode = "merge" }},
		{name: "unknown labels", mutate: func(c *Config) { c.Vocab.Labels = "upper" }},
		{name: "zero run timeout", mutate: func(c *Config) { c.Vocab.RunTimeout = 0 }},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }},
		{name: "db max conns zero", mutate: func(c *Config) {
			c.Database = DatabaseConfig{DSN: "postgres://x", MaxConns: 0, BatchSize: 10}
		}},
		{name: "db min above max", mutate: func(c *Config) {
			c.Database = DatabaseConfig{DSN: "postgres://x", MaxConns: 2, MinConns: 3, BatchSize: 10}
		}},
		{name: "db batch size zero", mutate: func(c *Config) {
			c.Database = DatabaseConfig{DSN: "postgres://x", MaxConns: 2, MinConns: 1}
		}},
		{name: "db batch size too large", mutate: func(c *Config) {
			c.Database = DatabaseConfig{DSN: "postgres://x", MaxConns: 2, MinConns: 1, BatchSize: 50000}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_DatabaseIgnoredWhenDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{MaxConns: 0, BatchSize: 0}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("database settings should not be validated without dsn: %v", err)
	}
}

func TestValidate_CaseInsensitive(t *testing.T) {
	cfg := validConfig()
	cfg.Vocab.Mode = "Pairs"
	cfg.Vocab.Labels = "TAG"
	cfg.Log.Format = "JSON"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
