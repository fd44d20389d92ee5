package ai

import "errors"

var (
	// ErrEngineUnavailable indicates the completion engine's model resource
	// failed to initialize. Consumers must turn this into an explicit
	// user-visible error state rather than propagate a crash.
	ErrEngineUnavailable = errors.New("completion engine unavailable")
)
