package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessellate-ai/ragmux/core"
)

func TestNewChunker_Validation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		wantErr error
	}{
		{"zero size", 0, 0, ErrInvalidChunkSize},
		{"negative size", -1, 0, ErrInvalidChunkSize},
		{"negative overlap", 100, -1, ErrInvalidOverlap},
		{"overlap equals size", 100, 100, ErrInvalidOverlap},
		{"overlap exceeds size", 100, 150, ErrInvalidOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChunker(tt.size, tt.overlap)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewDefaultChunker(t *testing.T) {
	c := NewDefaultChunker()
	assert.Equal(t, DefaultChunkSize, c.Size())
	assert.Equal(t, DefaultChunkOverlap, c.Overlap())
}

func TestChunker_Split_ShortDocument(t *testing.T) {
	c := NewDefaultChunker()

	doc := core.Document{Source: "a.txt", Text: "short text"}
	chunks, err := c.Split(doc, 0)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	assert.Equal(t, "a.txt", chunks[0].Source)
	assert.Equal(t, 0, chunks[0].Seq)
	assert.Equal(t, "short text", chunks[0].Text)
}

func TestChunker_Split_LongDocument(t *testing.T) {
	c, err := NewChunker(100, 20)
	require.NoError(t, err)

	// Many short sentences so the splitter has natural boundaries.
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString("The quick brown fox jumps over the lazy dog. ")
	}
	doc := core.Document{Source: "long.txt", Text: sb.String()}

	chunks, err := c.Split(doc, 0)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Text), 100, "chunk %d exceeds size bound", i)
		assert.Equal(t, i, chunk.Seq)
		assert.Equal(t, "long.txt", chunk.Source)
		assert.NotEmpty(t, chunk.Text)
	}
}

func TestChunker_Split_Deterministic(t *testing.T) {
	c := NewDefaultChunker()
	doc := core.Document{Source: "a.txt", Text: strings.Repeat("word after word. ", 200)}

	first, err := c.Split(doc, 0)
	require.NoError(t, err)
	second, err := c.Split(doc, 0)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Text, second[i].Text)
	}
}

func TestChunker_Split_StartSeq(t *testing.T) {
	c := NewDefaultChunker()
	doc := core.Document{Source: "rows.csv", Text: "one row of data"}

	chunks, err := c.Split(doc, 7)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 7, chunks[0].Seq)
}

func TestChunker_Split_EmptyDocument(t *testing.T) {
	c := NewDefaultChunker()

	chunks, err := c.Split(core.Document{Source: "empty.txt", Text: ""}, 0)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}
