package core

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for persisted entities.
// Chunk IDs are derived from content hashing, so re-ingesting identical
// content yields identical IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Domain is a validated topical category label, e.g. "legal" or "finance".
// Values are only constructed through Registry.Parse, so holding a Domain
// implies the label is registered.
type Domain string

// String returns the domain label.
func (d Domain) String() string {
	return string(d)
}

// ErrorDomain is the sentinel label reported when answering fails before a
// routing decision can be made (completion engine unavailable).
const ErrorDomain = "error"

// Document is a raw text unit produced by a loader.
// Documents exist only between loading and chunking; they are not persisted.
type Document struct {
	Source string // originating file path
	Text   string
}

// Chunk is a bounded contiguous span of document text, the unit of
// embedding and retrieval.
type Chunk struct {
	Id         ID
	Domain     string
	Source     string // originating file path, inherited from the document
	Seq        int    // position of the chunk within its source document
	Text       string
	Vector     []float32 // embedding, populated by the ingestion pipeline
	InsertedAt time.Time
}

// ContentKey returns the string the chunk's ID is derived from.
// Source and sequence participate so that repeated text in different
// positions remains distinct.
func (c *Chunk) ContentKey() string {
	return c.Source + "\x00" + strconv.Itoa(c.Seq) + "\x00" + c.Text
}

// ScoredChunk is a retrieval hit with its similarity score.
type ScoredChunk struct {
	Chunk *Chunk
	Score float32
}
