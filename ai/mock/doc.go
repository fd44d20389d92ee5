// Package mock provides test double implementations of the ai interfaces.
//
// The mocks allow tests to run without a local model server and enable
// controlled, deterministic behavior:
//
//   - MockEmbedder: returns deterministic vectors based on text hash
//   - MockEngine: returns scripted completions, or fails as unavailable
//   - MockProvider: aggregates mock embedder and engine
//
// Custom behavior is injected via function fields:
//
//	engine := mock.NewMockEngine()
//	engine.CompleteFunc = func(ctx context.Context, prompt string) (string, error) {
//	    return "legal", nil
//	}
package mock
