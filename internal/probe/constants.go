package probe

import "time"

// Defaults applied to zero Config fields.
const (
	DefaultRounds  = 10
	DefaultTimeout = 5 * time.Second
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
	PercentageMultiplier    = 100
)

const apiKeyHeader = "X-API-Key"
