package probe

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

func verifyStatus(c Check, status int) error {
	if slices.Contains(c.WantStatus, status) {
		return nil
	}
	return fmt.Errorf("%w: got %d, want one of %v", ErrUnexpectedStatus, status, c.WantStatus)
}

func decodeObject(body []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedBody, err)
	}
	return m, nil
}

func requireString(m map[string]any, key string) (string, error) {
	s, ok := m[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: %q missing or not a string", ErrUnexpectedBody, key)
	}
	return s, nil
}

func verifyRoot(_ int, body []byte) error {
	m, err := decodeObject(body)
	if err != nil {
		return err
	}
	for _, key := range []string{"message", "environment", "apiVersion"} {
		if _, err := requireString(m, key); err != nil {
			return err
		}
	}
	return nil
}

func verifyEnvInfo(_ int, body []byte) error {
	m, err := decodeObject(body)
	if err != nil {
		return err
	}
	for _, key := range []string{"environment", "apiVersion"} {
		if _, err := requireString(m, key); err != nil {
			return err
		}
	}
	for _, key := range []string{"hasApiKey", "hasDatabaseUrl", "hasJwtSecret"} {
		if _, ok := m[key].(bool); !ok {
			return fmt.Errorf("%w: %q missing or not a boolean", ErrUnexpectedBody, key)
		}
	}
	if len(m) != 5 {
		return fmt.Errorf("%w: env-info exposes %d fields", ErrUnexpectedBody, len(m))
	}
	return nil
}

func verifyHealth(_ int, body []byte) error {
	m, err := decodeObject(body)
	if err != nil {
		return err
	}
	if status, _ := m["status"].(string); status != "ok" {
		return fmt.Errorf("%w: status %q", ErrUnexpectedBody, status)
	}
	ts, err := requireString(m, "timestamp")
	if err != nil {
		return err
	}
	if _, err := time.Parse(isoMillis, ts); err != nil {
		return fmt.Errorf("%w: timestamp %q: %w", ErrUnexpectedBody, ts, err)
	}
	return nil
}

func verifyProtected(_ int, body []byte) error {
	m, err := decodeObject(body)
	if err != nil {
		return err
	}
	if user, _ := m["user"].(string); user != "authenticated-user" {
		return fmt.Errorf("%w: user %q", ErrUnexpectedBody, user)
	}
	return nil
}

func verifyDatabaseStatus(status int, body []byte) error {
	if status == http.StatusInternalServerError {
		return verifyErrorBody("Database URL not configured")(status, body)
	}
	m, err := decodeObject(body)
	if err != nil {
		return err
	}
	if s, _ := m["status"].(string); s != "connected" {
		return fmt.Errorf("%w: status %q", ErrUnexpectedBody, s)
	}
	return nil
}

func verifyErrorBody(want string) func(int, []byte) error {
	return func(_ int, body []byte) error {
		m, err := decodeObject(body)
		if err != nil {
			return err
		}
		got, err := requireString(m, "error")
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: error %q, want %q", ErrUnexpectedBody, got, want)
		}
		return nil
	}
}
