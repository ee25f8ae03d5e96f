package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Store StoreConfig
	CORS  CORSConfig
}

type StoreConfig struct {
	// Path of the JSON document holding every user's time log.
	Path string `env:"TIME_LOGS_FILE, default=time_logs.json"`
}

type CORSConfig struct {
	// Comma separated list; "*" allows any origin.
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS, default=*"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Origins splits CORS.AllowedOrigins into trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORS.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if strings.TrimSpace(cfg.Store.Path) == "" {
		return nil, fmt.Errorf("config: TIME_LOGS_FILE must not be empty")
	}
	return &cfg, nil
}
