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


package answer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tessellate-ai/ragmux/core"
	"github.com/tessellate-ai/ragmux/retrieval"
	"github.com/tessellate-ai/ragmux/router"
	"github.com/tmc/langchaingo/prompts"
)

// UnavailableResponse is returned verbatim, paired with the "error" domain
// label, when the completion engine cannot serve the request.
const UnavailableResponse = "Error: completion engine unavailable. Set LLAMA_MODEL_PATH to a valid model file."

// qaTemplate is the stuffed-context QA prompt used for synthesis.
const qaTemplate = `Use the following pieces of context to answer the question at the end. If you don't know the answer, just say that you don't know, don't try to make up an answer.

{{.context}}

Question: {{.question}}
Helpful Answer:`

// Answerer runs the query pipeline: route, retrieve, synthesize.
type Answerer struct {
	router     *router.Router
	retrievers *retrieval.Set
	engine     ai.CompletionEngine
	prompt     prompts.PromptTemplate
	logger     *slog.Logger
}

// New creates an answerer from its three collaborators.
func New(rt *router.Router, retrievers *retrieval.Set, engine ai.CompletionEngine) (*Answerer, error) {
	if rt == nil {
		return nil, ErrRouterRequired
	}
	if retrievers == nil {
		return nil, ErrRetrieversRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	return &Answerer{
		router:     rt,
		retrievers: retrievers,
		engine:     engine,
		prompt:     prompts.NewPromptTemplate(qaTemplate, []string{"context", "question"}),
		logger:     slog.Default().With("component", "answerer"),
	}, nil
}

// Answer routes the question to a domain, retrieves that domain's most
// relevant chunks and synthesizes an answer from them.
// Returns the response text and the domain label used.
//
// An unavailable completion engine never produces an error: the result is
// (UnavailableResponse, "error", nil). Other failures, such as an
// unregistered routing label or a domain whose index was never ingested,
// are returned to the caller.
func (a *Answerer) Answer(ctx context.Context, question string) (string, string, error) {
	domain, err := a.router.Route(ctx, question)
	if err != nil {
		if errors.Is(err, ai.ErrEngineUnavailable) {
			a.logger.Warn("completion engine unavailable", "err", err)
			return UnavailableResponse, core.ErrorDomain, nil
		}
		return "", "", err
	}

	response, err := a.synthesize(ctx, domain, question)
	if err != nil {
		if errors.Is(err, ai.ErrEngineUnavailable) {
			a.logger.Warn("completion engine unavailable", "err", err)
			return UnavailableResponse, core.ErrorDomain, nil
		}
		return "", "", err
	}

	return response, domain.String(), nil
}

// synthesize builds the stuffed-context prompt from the domain's top chunks
// and asks the engine for the final answer.
func (a *Answerer) synthesize(ctx context.Context, domain core.Domain, question string) (string, error) {
	retriever, err := a.retrievers.Retriever(domain)
	if err != nil {
		return "", err
	}

	hits, err := retriever.Retrieve(ctx, question)
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(hits))
	for _, hit := range hits {
		texts = append(texts, hit.Chunk.Text)
	}

	prompt, err := a.prompt.Format(map[string]any{
		"context":  strings.Join(texts, "\n\n"),
		"question": question,
	})
	if err != nil {
		return "", err
	}

	out, err := a.engine.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}
