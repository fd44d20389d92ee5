package mock

import (
	"context"
	"sync"

	"github.com/tessellate-ai/ragmux/ai"
)

// MockEngine is a test double for ai.CompletionEngine.
// It allows custom behavior injection via function fields.
// Safe for concurrent use, matching the ai.CompletionEngine contract.
type MockEngine struct {
	// CompleteFunc is called by Complete if set.
	// If nil, uses the scripted Responses queue, then Fallback.
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	// Responses are returned in order for successive Complete calls.
	Responses []string

	// Fallback is returned once Responses is exhausted. Defaults to "".
	Fallback string

	mu        sync.Mutex
	callCount int
	prompts   []string
}

// NewMockEngine creates a mock engine that returns scripted responses.
// Note: Returns concrete type to allow test assertions.
func NewMockEngine(responses ...string) *MockEngine {
	return &MockEngine{Responses: responses}
}

// NewUnavailableEngine creates an engine that always reports
// ai.ErrEngineUnavailable, mirroring a missing model resource.
func NewUnavailableEngine() ai.CompletionEngine {
	return ai.UnavailableEngine("mock engine configured unavailable")
}

// Complete returns the next scripted response.
func (m *MockEngine) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.prompts = append(m.prompts, prompt)

	if m.CompleteFunc != nil {
		fn := m.CompleteFunc
		m.mu.Unlock()
		return fn(ctx, prompt)
	}

	if len(m.Responses) > 0 {
		out := m.Responses[0]
		m.Responses = m.Responses[1:]
		m.mu.Unlock()
		return out, nil
	}

	out := m.Fallback
	m.mu.Unlock()
	return out, nil
}

// CallCount returns the number of Complete calls.
func (m *MockEngine) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Prompts returns the prompts passed to Complete, in call order.
// The returned slice is a copy.
func (m *MockEngine) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Reset clears the call log and injected behavior.
func (m *MockEngine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.prompts = nil
	m.CompleteFunc = nil
	m.Responses = nil
	m.Fallback = ""
}
