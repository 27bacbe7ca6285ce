package dataset

import (
	"time"

	"incomeviz.dev/internal/income"
)

type Config struct {
	DataPath        string
	Encoding        string
	Schema          income.Schema
	CacheSize       int
	CacheTTL        time.Duration
	CleanupInterval time.Duration
	Verbose         bool
}

func (config Config) cleanupEnabled() bool {
	return config.CacheTTL > 0 && config.CleanupInterval > 0
}

func (config Config) withDefaults() Config {
	if config.Encoding == "" {
		config.Encoding = income.DefaultEncoding
	}
	if config.CacheSize < 1 {
		config.CacheSize = 4
	}
	if config.CleanupInterval == 0 && config.CacheTTL > 0 {
		config.CleanupInterval = config.CacheTTL
	}
	config.Schema = config.Schema.WithDefaults()
	return config
}
