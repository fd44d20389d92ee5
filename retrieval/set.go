package retrieval

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tessellate-ai/ragmux/core"
	"github.com/tessellate-ai/ragmux/storage"
	"github.com/tessellate-ai/ragmux/storage/badger"
)

// Set manages one retriever per registered domain, opened lazily against the
// domain's persisted index and cached for the life of the set.
type Set struct {
	registry *core.Registry
	layout   storage.Layout
	embedder ai.Embedder
	opts     []RetrieverOption
	logger   *slog.Logger

	mu   sync.Mutex
	open map[string]*DomainRetriever
}

// NewSet creates a retriever set for every domain in the registry.
// Indices are opened on first use; see Retriever.
func NewSet(registry *core.Registry, layout storage.Layout, embedder ai.Embedder, opts ...RetrieverOption) (*Set, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	return &Set{
		registry: registry,
		layout:   layout,
		embedder: embedder,
		opts:     opts,
		logger:   slog.Default().With("component", "retrieval-set"),
		open:     make(map[string]*DomainRetriever),
	}, nil
}

// Retriever returns the retriever for a domain, opening its index on first
// use. A domain whose index directory does not exist fails with
// storage.ErrIndexNotFound; querying an un-ingested domain is a
// configuration error, not an empty result.
func (s *Set) Retriever(domain core.Domain) (*DomainRetriever, error) {
	label := domain.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.open[label]; ok {
		return r, nil
	}

	path := s.layout.DomainPath(label)
	repo, err := badger.OpenIndex(path, badger.MustExist)
	if err != nil {
		return nil, fmt.Errorf("opening index for domain %q: %w", label, err)
	}

	r, err := NewDomainRetriever(label, repo, s.embedder, s.opts...)
	if err != nil {
		repo.Close()
		return nil, err
	}

	s.logger.Debug("opened domain index", "domain", label, "path", path)
	s.open[label] = r
	return r, nil
}

// Close closes every opened retriever.
func (s *Set) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for label, r := range s.open {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(s.open, label)
	}
	return firstErr
}
