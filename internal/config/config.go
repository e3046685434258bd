// Package config defines service configuration and how it is loaded.
package config

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// GRPCPort is the gRPC listen port.
	GRPCPort int `koanf:"grpc_port"`

	// MetricsAddr is the HTTP listen address for /metrics and /healthz. Empty disables it.
	MetricsAddr string `koanf:"metrics_addr"`

	// DND5eBaseURL points at the D&D 5e API.
	DND5eBaseURL string `koanf:"dnd5e_base_url"`

	// HTTPTimeout bounds each D&D 5e API request.
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// APICacheTTL is how long the API client keeps responses in memory.
	APICacheTTL time.Duration `koanf:"api_cache_ttl"`

	// RedisAddr enables the shared armor detail cache. Empty disables it.
	RedisAddr string `koanf:"redis_addr"`

	// ArmorCacheTTL is how long armor details live in Redis.
	ArmorCacheTTL time.Duration `koanf:"armor_cache_ttl"`

	// FetchTimeout bounds one armor detail lookup including cache access.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		GRPCPort:      50051,
		MetricsAddr:   ":9090",
		DND5eBaseURL:  "https://www.dnd5eapi.co/api/2014/",
		HTTPTimeout:   30 * time.Second,
		APICacheTTL:   24 * time.Hour,
		RedisAddr:     "",
		ArmorCacheTTL: 24 * time.Hour,
		FetchTimeout:  10 * time.Second,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("dnd5e_base_url", c.DND5eBaseURL, vb)
	if c.HTTPTimeout <= 0 {
		vb.InvalidField("http_timeout", "must be positive")
	}
	if c.APICacheTTL < 0 {
		vb.InvalidField("api_cache_ttl", "cannot be negative")
	}
	if c.ArmorCacheTTL < 0 {
		vb.InvalidField("armor_cache_ttl", "cannot be negative")
	}
	if c.FetchTimeout <= 0 {
		vb.InvalidField("fetch_timeout", "must be positive")
	}

	return vb.Build()
}
