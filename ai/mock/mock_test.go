package mock

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmbedder_Deterministic(t *testing.T) {
	embedder := NewMockEmbedder()
	ctx := context.Background()

	first, err := embedder.EmbedText(ctx, "stable input")
	require.NoError(t, err)
	second, err := embedder.EmbedText(ctx, "stable input")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 384)
	assert.Equal(t, 2, embedder.CallCount())
}

func TestMockEmbedder_ConcurrentCalls(t *testing.T) {
	// The embedder contract requires thread safety; the ingestion pipeline
	// shares one embedder across its worker pool.
	embedder := NewMockEmbedder()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := embedder.EmbedTexts(ctx, []string{"one", "two"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, embedder.CallCount())
}

func TestMockEngine_ScriptedResponses(t *testing.T) {
	engine := NewMockEngine("legal", "an answer")
	engine.Fallback = "done"
	ctx := context.Background()

	out, err := engine.Complete(ctx, "route this")
	require.NoError(t, err)
	assert.Equal(t, "legal", out)

	out, err = engine.Complete(ctx, "answer this")
	require.NoError(t, err)
	assert.Equal(t, "an answer", out)

	out, err = engine.Complete(ctx, "exhausted")
	require.NoError(t, err)
	assert.Equal(t, "done", out)

	assert.Equal(t, 3, engine.CallCount())
	assert.Equal(t, []string{"route this", "answer this", "exhausted"}, engine.Prompts())
}

func TestMockEngine_ConcurrentCalls(t *testing.T) {
	engine := NewMockEngine()
	engine.Fallback = "code"
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := engine.Complete(ctx, "prompt")
			assert.NoError(t, err)
			assert.Equal(t, "code", out)
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, engine.CallCount())
	assert.Len(t, engine.Prompts(), 16)
}

func TestMockEngine_Reset(t *testing.T) {
	engine := NewMockEngine("legal")
	_, err := engine.Complete(context.Background(), "prompt")
	require.NoError(t, err)

	engine.Reset()

	assert.Zero(t, engine.CallCount())
	assert.Empty(t, engine.Prompts())
}
