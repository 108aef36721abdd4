package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	SQLite SQLiteConfig
	Redis  RedisConfig
	Rates  RatesConfig
}

type SQLiteConfig struct {
	// DSN defaults to a process-lifetime in-memory database; set a file
	// path for a durable single-file store.
	DSN string `env:"SQLITE_DSN, default=file::memory:?cache=shared"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type RatesConfig struct {
	URL          string        `env:"RATES_API_URL, default=https://api.currencyapi.com/v3/latest"`
	APIKey       string        `env:"RATES_API_KEY"`
	BaseCurrency string        `env:"BASE_CURRENCY, default=INR"`
	Timeout      time.Duration `env:"RATES_TIMEOUT, default=5s"`
	CacheTTL     time.Duration `env:"RATES_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
