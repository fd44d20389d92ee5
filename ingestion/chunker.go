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


package ingestion

import (
	"fmt"

	"github.com/tessellate-ai/ragmux/core"
	"github.com/tmc/langchaingo/textsplitter"
)

// Default chunking parameters: ~800 character chunks with 100 characters of
// overlap between neighbors.
const (
	DefaultChunkSize    = 800
	DefaultChunkOverlap = 100
)

// Chunker splits documents into bounded, overlapping chunks using a
// deterministic sliding-window splitter. No semantic awareness: boundaries
// are character-count based, recursing on separators only to avoid cutting
// mid-word where possible.
type Chunker struct {
	splitter textsplitter.RecursiveCharacter
	size     int
	overlap  int
}

// NewChunker creates a chunker with the given size and overlap.
// Size must be positive; overlap must be >= 0 and < size.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOverlap, overlap)
	}

	return &Chunker{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(size),
			textsplitter.WithChunkOverlap(overlap),
		),
		size:    size,
		overlap: overlap,
	}, nil
}

// NewDefaultChunker creates a chunker with the default 800/100 parameters.
func NewDefaultChunker() *Chunker {
	c, err := NewChunker(DefaultChunkSize, DefaultChunkOverlap)
	if err != nil {
		// Defaults are static and valid.
		panic(err)
	}
	return c
}

// Size returns the configured maximum chunk length.
func (c *Chunker) Size() int {
	return c.size
}

// Overlap returns the configured overlap between neighboring chunks.
func (c *Chunker) Overlap() int {
	return c.overlap
}

// Split splits one document into chunks. Sequence numbers start at startSeq
// so callers can keep chunks from the same source file contiguous across
// multiple documents (e.g. CSV rows).
func (c *Chunker) Split(doc core.Document, startSeq int) ([]*core.Chunk, error) {
	pieces, err := c.splitter.SplitText(doc.Text)
	if err != nil {
		return nil, err
	}

	chunks := make([]*core.Chunk, 0, len(pieces))
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		// Seq counts emitted chunks, not raw pieces, so sequence numbers
		// stay contiguous even if a piece is skipped.
		chunks = append(chunks, &core.Chunk{
			Source: doc.Source,
			Seq:    startSeq + len(chunks),
			Text:   piece,
		})
	}
	return chunks, nil
}
