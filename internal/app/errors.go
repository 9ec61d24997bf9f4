package service

import "errors"

var (
	// ErrListen is returned when a listener cannot be bound.
	ErrListen = errors.New("failed to bind listener")
	// ErrOpsHandler is returned when the ops mux cannot be assembled.
	ErrOpsHandler = errors.New("failed to build ops handler")
	// ErrShutdown is returned when a listener does not drain before the deadline.
	ErrShutdown = errors.New("failed to shut down listener")
)
