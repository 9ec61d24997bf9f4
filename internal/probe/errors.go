package probe

import "errors"

var (
	// ErrUnhealthy is returned when the router's /health check fails.
	ErrUnhealthy = errors.New("router is not healthy")
	// ErrChecksFailed is returned when at least one check did not pass.
	ErrChecksFailed = errors.New("probe checks failed")
	// ErrUnexpectedStatus is returned for a response outside WantStatus.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrUnexpectedBody is returned when a response body fails verification.
	ErrUnexpectedBody = errors.New("unexpected body")
)
