package router

import "errors"

var (
	// ErrEngineRequired is returned when a completion engine is not provided.
	ErrEngineRequired = errors.New("completion engine required")

	// ErrRegistryRequired is returned when a domain registry is not provided.
	ErrRegistryRequired = errors.New("domain registry required")
)
