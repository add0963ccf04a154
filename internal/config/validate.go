package config

import (
	"fmt"
	"slices"
	"strings"
)

// maxBatchSize keeps a multi-row entries INSERT under PostgreSQL's 65535 bind parameters.
const maxBatchSize = 10000

var (
	validModes   = []string{"aggregate", "pairs", "words"}
	validLabels  = []string{"name", "tag"}
	validFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.WordNet.Path) == "" {
		return fmt.Errorf("wordnet.path is required")
	}
	if c.WordNet.DownloadTimeout <= 0 {
		return fmt.Errorf("wordnet.download_timeout must be > 0 (got %v)", c.WordNet.DownloadTimeout)
	}

	if !oneOf(c.Vocab.Mode, validModes) {
		return fmt.Errorf("vocab.mode must be one of %v (got %q)", validModes, c.Vocab.Mode)
	}
	if !oneOf(c.Vocab.Labels, validLabels) {
		return fmt.Errorf("vocab.labels must be one of %v (got %q)", validLabels, c.Vocab.Labels)
	}
	if c.Vocab.RunTimeout <= 0 {
		return fmt.Errorf("vocab.run_timeout must be > 0 (got %v)", c.Vocab.RunTimeout)
	}

	if c.Database.Enabled() {
		if err := c.Database.validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}

	if !oneOf(c.Log.Format, validFormats) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validFormats, c.Log.Format)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be between 0 and max_conns (got %d)", d.MinConns)
	}
	if d.BatchSize <= 0 || d.BatchSize > maxBatchSize {
		return fmt.Errorf("batch_size must be between 1 and %d (got %d)", maxBatchSize, d.BatchSize)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	return slices.Contains(allowed, strings.ToLower(strings.TrimSpace(v)))
}
