package optimizer

import "errors"

var (
	// ErrUnknownMethod indicates an Options.Method outside the supported set.
	ErrUnknownMethod = errors.New("optimizer: unknown method")

	// ErrBadRestarts indicates Options.Restarts < 1.
	ErrBadRestarts = errors.New("optimizer: restarts must be >= 1")
)
