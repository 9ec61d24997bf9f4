// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Platform bindings (environment label, API version, secrets) are read
// under the exact names the hosting platform injects.
// - Operational settings use the EDGEGATE_ prefix.
// - External errors are wrapped with this package's sentinel errors.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the public HTTP listen address, e.g. ":8787".
	Addr string `koanf:"addr"`

	// MetricsAddr configures the ops listener serving /metrics and API docs.
	// Empty disables the ops listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// ShutdownTimeout bounds graceful shutdown of both listeners.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is the deployment label, e.g. "production".
	Environment string `koanf:"environment"`

	// APIVersion is reported by the informational routes.
	APIVersion string `koanf:"api_version"`

	// APIKey is the shared secret required by the /api gate.
	APIKey Secret `koanf:"api_key"`

	// DatabaseURL, JWTSecret and the third-party keys are declared for the
	// platform but only their presence is ever inspected.
	DatabaseURL      Secret `koanf:"database_url"`
	JWTSecret        Secret `koanf:"jwt_secret"`
	ThirdPartyAPIKey Secret `koanf:"third_party_api_key"`
	StripeSecretKey  Secret `koanf:"stripe_secret_key"`
	SendgridAPIKey   Secret `koanf:"sendgrid_api_key"`
}

// Default configuration values.
const (
	defaultLogLevel        = "info"
	defaultAddr            = ":8787"
	defaultMetricsAddr     = ":9797"
	defaultShutdownTimeout = 30 * time.Second
	defaultEnvironment     = "development"
	defaultAPIVersion      = "v1"
)

// New creates a Config populated with defaults. Secrets default to unset.
func New() *Config {
	return &Config{
		LogLevel:        defaultLogLevel,
		Addr:            defaultAddr,
		MetricsAddr:     defaultMetricsAddr,
		ShutdownTimeout: defaultShutdownTimeout,
		Environment:     defaultEnvironment,
		APIVersion:      defaultAPIVersion,
	}
}

// Bindings returns the immutable request-time view of the configuration.
func (c *Config) Bindings() Bindings {
	return Bindings{
		Environment:      c.Environment,
		APIVersion:       c.APIVersion,
		APIKey:           c.APIKey,
		DatabaseURL:      c.DatabaseURL,
		JWTSecret:        c.JWTSecret,
		ThirdPartyAPIKey: c.ThirdPartyAPIKey,
		StripeSecretKey:  c.StripeSecretKey,
		SendgridAPIKey:   c.SendgridAPIKey,
	}
}
