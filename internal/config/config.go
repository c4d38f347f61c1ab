package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/climate-pulse/internal/dataset"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Dataset source. DataBaseURL takes precedence over DataDir when set.
	DataDir          string
	DataBaseURL      string
	DataFormat       string
	DataFetchTimeout time.Duration

	ProjectionCacheSize int

	// Kafka projection events (feature-flagged via KAFKA_ENABLED).
	KafkaEnabled         bool
	KafkaBrokers         []string
	KafkaProjectionTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	fetchTimeoutStr := sharedcfg.EnvOrDefault("DATA_FETCH_TIMEOUT", "5s")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil || fetchTimeout <= 0 {
		return nil, errors.New("invalid DATA_FETCH_TIMEOUT")
	}

	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		DataDir:          sharedcfg.EnvOrDefault("DATA_DIR", "data"),
		DataBaseURL:      os.Getenv("DATA_BASE_URL"),
		DataFormat:       sharedcfg.EnvOrDefault("DATA_FORMAT", dataset.FormatCSV),
		DataFetchTimeout: fetchTimeout,

		ProjectionCacheSize: cacheSize,

		KafkaEnabled:         os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:         sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaProjectionTopic: sharedcfg.EnvOrDefault("KAFKA_PROJECTION_TOPIC", "climate-projections"),
	}

	if cfg.DataFormat != dataset.FormatCSV && cfg.DataFormat != dataset.FormatXLSX {
		return nil, fmt.Errorf("invalid DATA_FORMAT %q: must be %s or %s", cfg.DataFormat, dataset.FormatCSV, dataset.FormatXLSX)
	}
	if cfg.DataBaseURL == "" && cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR or DATA_BASE_URL is required")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
		}
		if cfg.KafkaProjectionTopic == "" {
			return nil, errors.New("KAFKA_PROJECTION_TOPIC is required when KAFKA_ENABLED is true")
		}
	}

	return cfg, nil
}

func parseCacheSize() (int, error) {
	s := os.Getenv("PROJECTION_CACHE_SIZE")
	if s == "" {
		return 256, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid PROJECTION_CACHE_SIZE %q: must be a non-negative integer", s)
	}
	return n, nil
}
