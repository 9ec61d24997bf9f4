package config

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
)

const redacted = "***REDACTED***"

// Secret holds a sensitive binding. Its printed, logged and JSON forms never
// reveal the underlying value.
type Secret string

// Configured reports whether the secret holds a non-empty value.
func (s Secret) Configured() bool { return s != "" }

// Matches compares candidate against the secret in constant time.
// An unset secret never matches, not even an empty candidate.
func (s Secret) Matches(candidate string) bool {
	if s == "" || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s), []byte(candidate)) == 1
}

// Reveal returns the raw value. Callers must not echo it to clients or logs.
func (s Secret) Reveal() string { return string(s) }

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// GoString keeps %#v from printing the raw value.
func (s Secret) GoString() string { return s.String() }

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value { return slog.StringValue(s.String()) }

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }
