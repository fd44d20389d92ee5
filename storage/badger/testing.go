package badger

import "github.com/tessellate-ai/ragmux/storage"

// NewMemoryIndex creates an in-memory chunk repository for testing.
// Caller must close the repository when done.
func NewMemoryIndex() (storage.ChunkRepository, error) {
	backend, err := OpenMemoryBackend()
	if err != nil {
		return nil, err
	}
	return NewChunkRepository(backend), nil
}
