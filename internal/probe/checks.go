package probe

import "net/http"

const wrongKeySuffix = "-wrong"

// DefaultChecks returns the expectations every deployed router must meet.
// Checks that need the shared secret are included only when apiKey is set.
func DefaultChecks(apiKey string) []Check {
	checks := []Check{
		{Name: "root", Path: "/", WantStatus: []int{http.StatusOK}, Verify: verifyRoot},
		{Name: "env_info", Path: "/env-info", WantStatus: []int{http.StatusOK}, Verify: verifyEnvInfo},
		{Name: "health", Path: "/health", WantStatus: []int{http.StatusOK}, Verify: verifyHealth},
		{Name: "not_found", Path: "/does-not-exist", WantStatus: []int{http.StatusNotFound}, Verify: verifyErrorBody("Not Found")},
		{Name: "gate_missing_key", Path: "/api/protected", WantStatus: []int{http.StatusUnauthorized}, Verify: verifyErrorBody("Unauthorized")},
		{Name: "gate_unknown_path", Path: "/api/does-not-exist", WantStatus: []int{http.StatusUnauthorized}, Verify: verifyErrorBody("Unauthorized")},
	}
	if apiKey == "" {
		return checks
	}
	return append(checks,
		Check{
			Name:       "gate_wrong_key",
			Path:       "/api/protected",
			APIKey:     apiKey + wrongKeySuffix,
			WantStatus: []int{http.StatusUnauthorized},
			Verify:     verifyErrorBody("Unauthorized"),
		},
		Check{
			Name:       "protected",
			Path:       "/api/protected",
			APIKey:     apiKey,
			WantStatus: []int{http.StatusOK},
			Verify:     verifyProtected,
		},
		Check{
			Name:       "database_status",
			Path:       "/api/database-status",
			APIKey:     apiKey,
			WantStatus: []int{http.StatusOK, http.StatusInternalServerError},
			Verify:     verifyDatabaseStatus,
		},
		Check{
			Name:       "authorized_not_found",
			Path:       "/api/does-not-exist",
			APIKey:     apiKey,
			WantStatus: []int{http.StatusNotFound},
			Verify:     verifyErrorBody("Not Found"),
		},
	)
}
