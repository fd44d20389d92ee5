// Copyright 2026 Tessellate Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/tessellate-ai/ragmux/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock embedder and engine instances.
type MockProvider struct {
	embedder *MockEmbedder
	engine   ai.CompletionEngine
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockEmbedder()/GetMockEngine() to access concrete types for
// test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		embedder: NewMockEmbedder(),
		engine:   NewMockEngine(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(embedder *MockEmbedder, engine ai.CompletionEngine) ai.Provider {
	return &MockProvider{
		embedder: embedder,
		engine:   engine,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Engine returns the configured engine.
func (p *MockProvider) Engine() ai.CompletionEngine {
	return p.engine
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockEngine returns the underlying engine when it is a *MockEngine,
// or nil otherwise.
func (p *MockProvider) GetMockEngine() *MockEngine {
	if e, ok := p.engine.(*MockEngine); ok {
		return e
	}
	return nil
}
