package physics

import "errors"

// Physics errors
var (
	ErrDegenerateSegment = errors.New("segment has zero length")
	ErrUnknownStrategy   = errors.New("unknown collision strategy")
	ErrSystemRunning     = errors.New("physics system is already running")
	ErrSystemNotRunning  = errors.New("physics system is not running")
)
