package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Search   SearchConfig   `yaml:"search"`
	Interest InterestConfig `yaml:"interest"`
	Notify   NotifyConfig   `yaml:"notify"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SearchConfig holds fallback search and ranking settings.
type SearchConfig struct {
	// SimilarityThreshold prunes candidates whose raw distance score exceeds
	// it before ranking. 0 keeps only exact matches, 1 keeps everything.
	SimilarityThreshold float64 `yaml:"similarity_threshold" env:"SEARCH_SIMILARITY_THRESHOLD" env-default:"0.6"`
	// CatalogScanLimit caps how many catalog terms a single fallback search
	// loads, most-popular first. 0 means the whole catalog.
	CatalogScanLimit int `yaml:"catalog_scan_limit"   env:"SEARCH_CATALOG_SCAN_LIMIT"   env-default:"0"`
	DefaultLimit     int `yaml:"default_limit"        env:"SEARCH_DEFAULT_LIMIT"        env-default:"3"`
	DefaultMinProb   int `yaml:"default_min_prob"     env:"SEARCH_DEFAULT_MIN_PROB"     env-default:"50"`
}

// InterestConfig holds interest matcher settings.
type InterestConfig struct {
	// SweepWorkers bounds the notification fan-out during an item-created
	// sweep so a large pending backlog cannot flood the dispatch channel.
	SweepWorkers int `yaml:"sweep_workers" env:"INTEREST_SWEEP_WORKERS" env-default:"8"`
	// ScanBatch is the page size for loading pending requests.
	ScanBatch int `yaml:"scan_batch"    env:"INTEREST_SCAN_BATCH"    env-default:"500"`
}

// NotifyConfig holds notification composition settings.
type NotifyConfig struct {
	FromAddress  string `yaml:"from_address"   env:"NOTIFY_FROM_ADDRESS"   env-default:"no-reply@bidfelt.example"`
	DeepLinkBase string `yaml:"deep_link_base" env:"NOTIFY_DEEP_LINK_BASE" env-default:"https://bidfelt.example"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
