package ai

import (
	"context"
	"fmt"
)

// UnavailableEngine returns a CompletionEngine whose every call fails with
// ErrEngineUnavailable, annotated with the given reason. Providers substitute
// it when the model resource cannot be initialized, so downstream components
// always hold a non-nil engine.
func UnavailableEngine(reason string) CompletionEngine {
	return &unavailableEngine{reason: reason}
}

type unavailableEngine struct {
	reason string
}

func (e *unavailableEngine) Complete(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrEngineUnavailable, e.reason)
}
