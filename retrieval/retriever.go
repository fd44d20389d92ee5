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


package retrieval

import (
	"context"
	"log/slog"

	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tessellate-ai/ragmux/core"
	"github.com/tessellate-ai/ragmux/storage"
	"github.com/tmc/langchaingo/schema"
)

// DefaultTopK is how many chunks a retriever returns per query.
const DefaultTopK = 4

// minSimilarity passed to the index scan. Top-k semantics: every chunk
// competes, nothing is cut by threshold.
const noThreshold float32 = -1

// DomainRetriever answers similarity queries against one domain's index.
type DomainRetriever struct {
	domain   string
	repo     storage.ChunkRepository
	embedder ai.Embedder
	topK     int
	logger   *slog.Logger
}

var _ schema.Retriever = (*DomainRetriever)(nil)

// RetrieverOption configures a DomainRetriever.
type RetrieverOption func(*DomainRetriever)

// WithTopK sets how many chunks are returned per query.
func WithTopK(k int) RetrieverOption {
	return func(r *DomainRetriever) {
		if k > 0 {
			r.topK = k
		}
	}
}

// NewDomainRetriever creates a retriever over an open domain index.
// The retriever takes ownership of the repository; Close releases it.
func NewDomainRetriever(domain string, repo storage.ChunkRepository, embedder ai.Embedder, opts ...RetrieverOption) (*DomainRetriever, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &DomainRetriever{
		domain:   domain,
		repo:     repo,
		embedder: embedder,
		topK:     DefaultTopK,
		logger:   slog.Default().With("component", "retriever", "domain", domain),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Domain returns the domain label this retriever serves.
func (r *DomainRetriever) Domain() string {
	return r.domain
}

// Retrieve returns the most relevant chunks for the query,
// most-relevant-first.
func (r *DomainRetriever) Retrieve(ctx context.Context, query string) ([]*core.ScoredChunk, error) {
	vector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error embedding query", "err", err)
		return nil, err
	}

	hits, err := r.repo.FindSimilar(ctx, core.NormalizeVector(vector), noThreshold, r.topK)
	if err != nil {
		r.logger.Error("error querying index", "err", err)
		return nil, err
	}

	r.logger.Debug("retrieved chunks", "hits", len(hits))
	return hits, nil
}

// GetRelevantDocuments implements schema.Retriever for langchaingo chains.
func (r *DomainRetriever) GetRelevantDocuments(ctx context.Context, query string) ([]schema.Document, error) {
	hits, err := r.Retrieve(ctx, query)
	if err != nil {
		return nil, err
	}

	docs := make([]schema.Document, 0, len(hits))
	for _, hit := range hits {
		docs = append(docs, schema.Document{
			PageContent: hit.Chunk.Text,
			Metadata: map[string]any{
				"domain": hit.Chunk.Domain,
				"source": hit.Chunk.Source,
			},
			Score: hit.Score,
		})
	}
	return docs, nil
}

// Close releases the underlying index.
func (r *DomainRetriever) Close() error {
	return r.repo.Close()
}
