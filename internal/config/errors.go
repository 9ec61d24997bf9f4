package config

import "errors"

var (
	// ErrLoadConfig wraps failures reading the YAML file or the environment,
	// or decoding them into Config.
	ErrLoadConfig = errors.New("failed to load edgegate config")
	// ErrInvalidConfig marks a loaded Config that cannot serve traffic.
	ErrInvalidConfig = errors.New("invalid edgegate config")
)
