package answer

import "errors"

var (
	// ErrEngineRequired is returned when a completion engine is not provided.
	ErrEngineRequired = errors.New("completion engine required")

	// ErrRouterRequired is returned when a router is not provided.
	ErrRouterRequired = errors.New("router required")

	// ErrRetrieversRequired is returned when a retriever set is not provided.
	ErrRetrieversRequired = errors.New("retriever set required")
)
