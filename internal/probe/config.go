package probe

import "time"

// Config holds configuration for a probe run.
type Config struct {
	BaseURL string        // Base URL of the router
	APIKey  string        // Shared secret for gated checks; empty skips them
	Rounds  int           // Times each check is executed
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every failed result
}

// Check is one expected request/response pair.
type Check struct {
	Name       string
	Path       string
	APIKey     string // sent as X-API-Key when non-empty
	WantStatus []int
	Verify     func(status int, body []byte) error
}

// Result is the outcome of a single check execution.
type Result struct {
	Check   string
	Status  int
	Latency time.Duration
	Err     error
}

// Stats holds run statistics.
type Stats struct {
	ChecksRun int
	Passed    int
	Failed    int
	Failures  map[string]int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
