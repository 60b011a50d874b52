package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=prismatech-dev-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Storage StorageConfig
	Gateway GatewayConfig
	Session SessionConfig
	Notify  NotifyConfig

	Mongo MongoConfig
	Redis RedisConfig
}

// StorageConfig selects the medium holding persisted sessions.
type StorageConfig struct {
	Driver string        `env:"STORAGE_DRIVER, default=memory"` // memory | redis
	TTL    time.Duration `env:"STORAGE_TTL,    default=720h"`
}

// GatewayConfig selects how credentials are checked.
type GatewayConfig struct {
	Driver string        `env:"GATEWAY_DRIVER, default=mock"` // mock | mongo
	Delay  time.Duration `env:"GATEWAY_DELAY,  default=1s"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE,     default=prismatech_scope"`
	IdleTTL    time.Duration `env:"SESSION_IDLE_TTL,   default=30m"`
	ReadyWait  time.Duration `env:"SESSION_READY_WAIT, default=250ms"`
}

type NotifyConfig struct {
	Workers int `env:"NOTIFY_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=prismatech"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown drivers.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	switch c.Gateway.Driver {
	case "mock", "mongo":
	default:
		return fmt.Errorf("config: unknown GATEWAY_DRIVER %q", c.Gateway.Driver)
	}
	if c.Gateway.Delay < 0 {
		return fmt.Errorf("config: GATEWAY_DELAY must not be negative")
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
