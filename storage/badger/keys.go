package badger

import (
	"fmt"

	"github.com/tessellate-ai/ragmux/core"
)

// Key prefixes for different data types
const (
	chunkPrefix = "chunk"
)

// makeChunkKey generates a key for a chunk by ID.
func makeChunkKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", chunkPrefix, id))
}
