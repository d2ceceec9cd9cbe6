package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration.
type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Pipeline Configuration
	Collector CollectorConfig

	// External source credentials
	Sources SourcesConfig
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level    string `env:"LOG_LEVEL" envDefault:"info"`
	Mode     string `env:"LOG_MODE" envDefault:"production"`
	Encoding string `env:"LOG_ENCODING" envDefault:"json"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"brandtracker"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"brandtracker"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	// Connection pool settings
	MaxRetries   int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout  time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
}

// CollectorConfig is the configuration for the collection pipeline.
// The statistical thresholds are env-tunable because their derivation
// is empirical.
type CollectorConfig struct {
	// SweepInterval is the process-wide gap between collection sweeps.
	SweepInterval time.Duration `env:"COLLECT_SWEEP_INTERVAL" envDefault:"15m"`
	// InitialDelay postpones the first sweep so the HTTP server comes up first.
	InitialDelay time.Duration `env:"COLLECT_INITIAL_DELAY" envDefault:"5s"`

	// Topic clustering window and cost caps.
	ClusterWindow     time.Duration `env:"CLUSTER_WINDOW" envDefault:"168h"`
	ClusterSampleCap  int           `env:"CLUSTER_SAMPLE_CAP" envDefault:"500"`
	ClusterMinSample  int           `env:"CLUSTER_MIN_SAMPLE" envDefault:"10"`
	ClusterCount      int           `env:"CLUSTER_COUNT" envDefault:"5"`
	ClusterOverlapMin float64       `env:"CLUSTER_OVERLAP_MIN" envDefault:"0.3"`

	// Spike detection thresholds.
	SpikeWindow        time.Duration `env:"SPIKE_WINDOW" envDefault:"24h"`
	SpikeMinMentions   int           `env:"SPIKE_MIN_MENTIONS" envDefault:"10"`
	SpikeSigmaFactor   float64       `env:"SPIKE_SIGMA_FACTOR" envDefault:"2.0"`
	SpikeMeanFactor    float64       `env:"SPIKE_MEAN_FACTOR" envDefault:"1.4"`
	SurgeSampleSize    int           `env:"SURGE_SAMPLE_SIZE" envDefault:"50"`
	SurgeMinSample     int           `env:"SURGE_MIN_SAMPLE" envDefault:"10"`
	SurgeNegativeRatio float64       `env:"SURGE_NEGATIVE_RATIO" envDefault:"0.6"`
}

// SourcesConfig holds per-source API credentials. A missing or placeholder
// credential turns the matching scraper into a no-op.
type SourcesConfig struct {
	NewsAPIKey         string `env:"NEWS_API_KEY"`
	RedditClientID     string `env:"REDDIT_CLIENT_ID"`
	RedditClientSecret string `env:"REDDIT_CLIENT_SECRET"`
	YouTubeAPIKey      string `env:"YOUTUBE_API_KEY"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres host is required")
	}
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis host is required")
	}
	if cfg.Collector.SweepInterval < time.Minute {
		return fmt.Errorf("collector sweep interval must be at least one minute")
	}
	if cfg.Collector.ClusterCount < 1 {
		return fmt.Errorf("cluster count must be positive")
	}
	return nil
}
