package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every issued token. There is no default: a process
	// without a secret must not start.
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=20m"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bank_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ThrottleConfig struct {
	MaxFailures int           `env:"LOGIN_MAX_FAILURES, default=5"`
	Window      time.Duration `env:"LOGIN_LOCK_WINDOW,  default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT_SECRET is a fatal startup condition, not a per-call error.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
