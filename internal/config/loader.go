package config

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	// EnvPrefix prefixes every configuration environment variable.
	EnvPrefix = "RPG_SHEET_"

	// EnvConfigFile names an optional YAML configuration file.
	EnvConfigFile = EnvPrefix + "CONFIG"

	// DefaultDotEnv is the dotenv file read when present.
	DefaultDotEnv = ".env"
)

type loadOptions struct {
	dotEnvPath string
}

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

// WithDotEnv reads path instead of DefaultDotEnv. An empty path skips dotenv.
func WithDotEnv(path string) LoadOption {
	return func(o *loadOptions) {
		o.dotEnvPath = path
	}
}

// Load builds a Config by layering, from low to high precedence:
//  1. defaults (New)
//  2. a dotenv file, which only fills variables not already set
//  3. a YAML file if RPG_SHEET_CONFIG is set
//  4. env vars prefixed RPG_SHEET_
func Load(_ context.Context, opts ...LoadOption) (*Config, error) {
	o := &loadOptions{dotEnvPath: DefaultDotEnv}
	for _, opt := range opts {
		opt(o)
	}

	if o.dotEnvPath != "" {
		if err := godotenv.Load(o.dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read dotenv file")
		}
	}

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file").
				WithMeta("path", path)
		}
	}

	// RPG_SHEET_GRPC_PORT -> grpc_port
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "failed to read environment")
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
