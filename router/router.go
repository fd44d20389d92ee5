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


package router

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tessellate-ai/ragmux/core"
	"github.com/tmc/langchaingo/prompts"
)

const routingTemplate = `You are a router that decides which domain a question belongs to.
Domains: {{.domains}}.
Return exactly one of these words.
Question: {{.question}}`

// Router classifies a question into one of the registered domains with a
// single completion call. No retries.
type Router struct {
	registry *core.Registry
	engine   ai.CompletionEngine
	prompt   prompts.PromptTemplate
	logger   *slog.Logger
}

// New creates a router over the given registry and completion engine.
func New(registry *core.Registry, engine ai.CompletionEngine) (*Router, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	return &Router{
		registry: registry,
		engine:   engine,
		prompt:   prompts.NewPromptTemplate(routingTemplate, []string{"domains", "question"}),
		logger:   slog.Default().With("component", "router"),
	}, nil
}

// Route classifies the question into a registered domain.
// The engine's raw output is normalized and validated; anything outside the
// registry yields core.ErrUnknownDomain. An unavailable engine surfaces as
// ai.ErrEngineUnavailable.
func (r *Router) Route(ctx context.Context, question string) (core.Domain, error) {
	prompt, err := r.prompt.Format(map[string]any{
		"domains":  strings.Join(r.registry.Labels(), ", "),
		"question": question,
	})
	if err != nil {
		return "", err
	}

	out, err := r.engine.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("routing question: %w", err)
	}

	domain, err := r.registry.Parse(out)
	if err != nil {
		r.logger.Warn("router returned unregistered label", "output", out)
		return "", err
	}

	r.logger.Debug("routed question", "domain", domain.String())
	return domain, nil
}
