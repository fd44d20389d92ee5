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


package openai

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tessellate-ai/ragmux/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// It manages embedder and completion engine instances.
type Provider struct {
	config   *ai.Config
	embedder *Embedder
	engine   ai.CompletionEngine
	logger   *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// A missing model resource does not fail construction: the provider
// substitutes the unavailable sentinel engine so that consumers resolve to
// explicit error results instead of crashing at startup.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := slog.Default().With("component", "openai-provider")

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	var engine ai.CompletionEngine
	if config.ModelPath != "" {
		if _, statErr := os.Stat(config.ModelPath); statErr != nil {
			logger.Warn("model resource missing, completion engine unavailable",
				"modelPath", config.ModelPath, "err", statErr)
			engine = ai.UnavailableEngine(fmt.Sprintf("model resource %q not found", config.ModelPath))
		}
	}
	if engine == nil {
		e, err := newEngine(config)
		if err != nil {
			logger.Warn("completion engine failed to initialize", "err", err)
			engine = ai.UnavailableEngine(err.Error())
		} else {
			engine = e
		}
	}

	return &Provider{
		config:   config,
		embedder: embedder,
		engine:   engine,
		logger:   logger,
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Engine returns the completion engine, which may be the unavailable sentinel.
func (p *Provider) Engine() ai.CompletionEngine {
	return p.engine
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
