package simulation

import "errors"

// Simulation-specific errors
var (
	ErrInvalidConfig     = errors.New("invalid simulation configuration")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrNotStarted        = errors.New("simulation is not started")
	ErrAlreadyStarted    = errors.New("simulation is already started")
)
