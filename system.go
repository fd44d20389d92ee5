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


// Package ragmux wires the ingestion and query pipelines into one system.
//
// Documents are chunked and embedded into per-domain vector indices; at query
// time a router classifies the question into one registered domain and the
// answerer synthesizes a response from that domain's most relevant chunks.
package ragmux

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tessellate-ai/ragmux/ai/openai"
	"github.com/tessellate-ai/ragmux/answer"
	"github.com/tessellate-ai/ragmux/core"
	"github.com/tessellate-ai/ragmux/ingestion"
	"github.com/tessellate-ai/ragmux/retrieval"
	"github.com/tessellate-ai/ragmux/router"
	"github.com/tessellate-ai/ragmux/storage"
	"github.com/tessellate-ai/ragmux/storage/badger"
)

// System is the assembled multi-domain RAG pipeline: one AI provider, one
// index layout, a pipeline for writes and a router/answerer for reads.
// Construct once at startup and share; every collaborator is passed by
// reference, there is no package-level state.
type System struct {
	registry   *core.Registry
	layout     storage.Layout
	provider   ai.Provider
	pipeline   *ingestion.Pipeline
	retrievers *retrieval.Set
	answerer   *answer.Answerer
	logger     *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig *ai.Config
	registry *core.Registry
	baseDir  string
	provider ai.Provider
	topK     int
}

// WithAIConfig sets the AI service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(cfg *ai.Config) SystemOption {
	return func(o *systemOptions) {
		o.aiConfig = cfg
	}
}

// WithRegistry sets the domain registry.
// Default is core.DefaultRegistry() (legal, code, finance).
func WithRegistry(registry *core.Registry) SystemOption {
	return func(o *systemOptions) {
		o.registry = registry
	}
}

// WithBaseDir sets the base directory for domain indices.
// Default is storage.DefaultBaseDir.
func WithBaseDir(dir string) SystemOption {
	return func(o *systemOptions) {
		o.baseDir = dir
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI one.
// Used by tests to substitute mocks.
func WithProvider(provider ai.Provider) SystemOption {
	return func(o *systemOptions) {
		o.provider = provider
	}
}

// WithTopK sets how many chunks retrievers return per query.
func WithTopK(k int) SystemOption {
	return func(o *systemOptions) {
		o.topK = k
	}
}

// NewSystem assembles a System.
// A missing completion-engine model resource does not fail construction;
// queries then answer with the "error" domain sentinel until it is fixed.
func NewSystem(opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
		registry: core.DefaultRegistry(),
		topK:     retrieval.DefaultTopK,
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	pipeline, err := ingestion.NewPipeline(provider.Embedder())
	if err != nil {
		provider.Close()
		return nil, err
	}

	layout := storage.NewLayout(options.baseDir)

	retrievers, err := retrieval.NewSet(options.registry, layout, provider.Embedder(),
		retrieval.WithTopK(options.topK))
	if err != nil {
		pipeline.Release()
		provider.Close()
		return nil, err
	}

	rt, err := router.New(options.registry, provider.Engine())
	if err != nil {
		retrievers.Close()
		pipeline.Release()
		provider.Close()
		return nil, err
	}

	answerer, err := answer.New(rt, retrievers, provider.Engine())
	if err != nil {
		retrievers.Close()
		pipeline.Release()
		provider.Close()
		return nil, err
	}

	return &System{
		registry:   options.registry,
		layout:     layout,
		provider:   provider,
		pipeline:   pipeline,
		retrievers: retrievers,
		answerer:   answerer,
		logger:     slog.Default(),
	}, nil
}

// IngestFolder ingests every supported file under folder into the domain's
// index, creating the index location if absent. The domain does not have to
// be registered for routing; registration only gates the query path.
// Returns a result message like "Ingested 12 chunks into vector_stores/demo_chroma".
func (s *System) IngestFolder(ctx context.Context, domain, folder string) (string, error) {
	if err := core.ValidateDomainLabel(domain); err != nil {
		return "", err
	}

	path := s.layout.DomainPath(domain)
	repo, err := badger.OpenIndex(path, badger.Create)
	if err != nil {
		return "", err
	}
	defer repo.Close()

	count, err := s.pipeline.Ingest(ctx, domain, folder, repo)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Ingested %d chunks into %s", count, path), nil
}

// Answer routes the question to a domain and synthesizes an answer from that
// domain's index. See answer.Answerer for the error contract.
func (s *System) Answer(ctx context.Context, question string) (string, string, error) {
	return s.answerer.Answer(ctx, question)
}

// Registry returns the domain registry.
func (s *System) Registry() *core.Registry {
	return s.registry
}

// Layout returns the index layout.
func (s *System) Layout() storage.Layout {
	return s.layout
}

// Close releases every component.
// The system should not be used after calling Close.
func (s *System) Close() error {
	s.pipeline.Release()

	var firstErr error
	if err := s.retrievers.Close(); err != nil {
		s.logger.Error("error closing retrievers", "err", err)
		firstErr = err
	}
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
