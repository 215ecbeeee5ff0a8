package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const EnvProduction = "production"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey signs the session cookie and the flash message store.
	SecretKey  string        `env:"SECRET_KEY,  required"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=12h"`

	Database      DatabaseConfig
	Storage       StorageConfig
	Redis         RedisConfig
	Notifications NotificationsConfig
}

type DatabaseConfig struct {
	URL         string `env:"DATABASE_URL,    required"`
	Name        string `env:"DB_NAME,         default=scholar_connect"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE, default=true"`
}

type StorageConfig struct {
	Driver    string `env:"STORAGE_DRIVER,     default=local"`
	Root      string `env:"STORAGE_ROOT,       default=uploads"`
	Endpoint  string `env:"STORAGE_ENDPOINT"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	Bucket    string `env:"STORAGE_BUCKET"`
	Region    string `env:"STORAGE_REGION,     default=us-east-1"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type NotificationsConfig struct {
	Capacity int `env:"NOTIFICATIONS_CAPACITY, default=500"`
}

// IsProduction reports whether secure cookies and JSON logs should be used.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// Addr returns the listen address derived from Port.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// DatabaseDriver infers the store backend from the connection string scheme.
func (c *Config) DatabaseDriver() string {
	u := strings.ToLower(c.Database.URL)
	if strings.HasPrefix(u, "mongodb://") || strings.HasPrefix(u, "mongodb+srv://") {
		return "mongo"
	}
	return "postgres"
}

// Load reads configuration from environment variables using go-envconfig.
// A missing DATABASE_URL or SECRET_KEY is an error.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith is Load with an explicit lookuper, used by tests.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "local":
		if c.Storage.Root == "" {
			return fmt.Errorf("STORAGE_ROOT must not be empty")
		}
	case "minio", "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("STORAGE_BUCKET is required for the %s driver", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Notifications.Capacity <= 0 {
		return fmt.Errorf("NOTIFICATIONS_CAPACITY must be positive")
	}
	return nil
}
