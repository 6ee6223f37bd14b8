package config

import "errors"

// Configuration errors indicate a programmer or deployment mistake. They are
// detected at the boundary where the bad value is introduced and are never
// retried or silently corrected.
var (
	ErrMalformedEmulatorAddress = errors.New("malformed emulator address, expecting host:port")
	ErrInvalidHost              = errors.New("host cannot be empty")
	ErrInvalidPort              = errors.New("port must be positive")
	ErrInvalidChannelCount      = errors.New("channel count has to be at least 1")
)
