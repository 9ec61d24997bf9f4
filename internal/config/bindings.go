package config

// Bindings is the platform-injected environment visible to request handlers.
// It is a value type; handlers receive a copy and cannot alter the process
// configuration.
type Bindings struct {
	// Plain values.
	Environment string
	APIVersion  string

	// Secret values.
	APIKey           Secret
	DatabaseURL      Secret
	JWTSecret        Secret
	ThirdPartyAPIKey Secret
	StripeSecretKey  Secret
	SendgridAPIKey   Secret
}

// Presence reports which secret bindings are configured, keyed by binding name.
func (b Bindings) Presence() map[string]bool {
	return map[string]bool{
		"api_key":             b.APIKey.Configured(),
		"database_url":        b.DatabaseURL.Configured(),
		"jwt_secret":          b.JWTSecret.Configured(),
		"third_party_api_key": b.ThirdPartyAPIKey.Configured(),
		"stripe_secret_key":   b.StripeSecretKey.Configured(),
		"sendgrid_api_key":    b.SendgridAPIKey.Configured(),
	}
}
