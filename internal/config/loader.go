package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks operational environment variables.
	EnvPrefix = "EDGEGATE_"

	// EnvConfigFile names the optional YAML config file.
	EnvConfigFile = EnvPrefix + "CONFIG"
)

// bindingKeys are read unprefixed, exactly as the platform injects them.
var bindingKeys = map[string]struct{}{
	"environment":         {},
	"api_version":         {},
	"api_key":             {},
	"database_url":        {},
	"jwt_secret":          {},
	"third_party_api_key": {},
	"stripe_secret_key":   {},
	"sendgrid_api_key":    {},
}

// operationalKeys are read only with the EDGEGATE_ prefix.
var operationalKeys = map[string]struct{}{
	"log_level":        {},
	"addr":             {},
	"metrics_addr":     {},
	"shutdown_timeout": {},
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if EDGEGATE_CONFIG is set
//  3. env (platform binding names and EDGEGATE_ operational names)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
		}
	}

	// Keys keep their underscores so they match the koanf tags on the struct.
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps an environment variable name to a config key. Variables
// outside the known sets map to "" and are skipped by the provider.
func envKey(name string) string {
	key := strings.ToLower(name)
	if rest, ok := strings.CutPrefix(key, strings.ToLower(EnvPrefix)); ok {
		if _, known := operationalKeys[rest]; known {
			return rest
		}
		return ""
	}
	if _, known := bindingKeys[key]; known {
		return key
	}
	return ""
}

// Validate reports configuration that cannot serve traffic.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.MetricsAddr != "" && c.MetricsAddr == c.Addr {
		return fmt.Errorf("%w: metrics_addr must differ from addr", ErrInvalidConfig)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: shutdown_timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}
