package storage

import (
	"context"

	"github.com/tessellate-ai/ragmux/core"
)

// ChunkRepository provides operations on a single domain's chunk index.
// Implementations must be thread-safe for concurrent readers.
type ChunkRepository interface {
	// AddChunks persists one or more chunks.
	// Assigns content-hash IDs to chunks with ID=0 and sets InsertedAt if
	// unset. A chunk whose content key matches an existing one overwrites it.
	// Returns the chunks with IDs and timestamps populated.
	AddChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// GetChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error)

	// FindSimilar finds chunks similar to the given vector.
	// Returns chunks with similarity >= minSimilarity, up to limit results,
	// ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.ScoredChunk, error)

	// CountChunks returns the number of chunks in the index.
	CountChunks(ctx context.Context) (int, error)

	// Close closes the index and releases resources.
	Close() error
}
