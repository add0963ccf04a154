package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	WordNet  WordNetConfig  `yaml:"wordnet"`
	Vocab    VocabConfig    `yaml:"vocab"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// WordNetConfig holds lexical dataset settings.
// Path is either an OEWN JSON directory or a GWN-LMF JSON(.gz) file.
type WordNetConfig struct {
	Path            string        `yaml:"path"             env:"WORDNET_PATH"             env-default:"./data/english-wordnet.json.gz"`
	DownloadURL     string        `yaml:"download_url"     env:"WORDNET_DOWNLOAD_URL"     env-default:"https://en-word.net/static/english-wordnet-2024.json.gz"`
	DownloadTimeout time.Duration `yaml:"download_timeout" env:"WORDNET_DOWNLOAD_TIMEOUT" env-default:"5m"`
}

// VocabConfig holds output layout settings.
type VocabConfig struct {
	Mode       string        `yaml:"mode"        env:"VOCAB_MODE"        env-default:"aggregate"`
	Labels     string        `yaml:"labels"      env:"VOCAB_LABELS"      env-default:"name"`
	RunTimeout time.Duration `yaml:"run_timeout" env:"VOCAB_RUN_TIMEOUT" env-default:"30m"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty DSN disables
// the database sink.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	BatchSize       int           `yaml:"batch_size"         env:"DATABASE_BATCH_SIZE"         env-default:"1000"`
}

// Enabled reports whether a database sink is configured.
func (d DatabaseConfig) Enabled() bool { return d.DSN != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
