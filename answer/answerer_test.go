package answer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tessellate-ai/ragmux/ai/mock"
	"github.com/tessellate-ai/ragmux/core"
	"github.com/tessellate-ai/ragmux/retrieval"
	"github.com/tessellate-ai/ragmux/router"
	"github.com/tessellate-ai/ragmux/storage"
	"github.com/tessellate-ai/ragmux/storage/badger"
)

// newTestAnswerer wires an answerer over a temp index layout and the given
// engine. Domains listed in ingested get a one-chunk index.
func newTestAnswerer(t *testing.T, engine ai.CompletionEngine, ingested ...string) *Answerer {
	t.Helper()

	layout := storage.NewLayout(t.TempDir())
	for _, label := range ingested {
		repo, err := badger.OpenIndex(layout.DomainPath(label), badger.Create)
		require.NoError(t, err)
		_, err = repo.AddChunks(context.Background(), &core.Chunk{
			Domain: label,
			Source: "seed.txt",
			Seq:    0,
			Text:   "Channels provide typed communication between goroutines.",
			Vector: []float32{1, 0},
		})
		require.NoError(t, err)
		require.NoError(t, repo.Close())
	}

	registry := core.DefaultRegistry()
	retrievers, err := retrieval.NewSet(registry, layout, mock.NewMockEmbedder())
	require.NoError(t, err)
	t.Cleanup(func() { retrievers.Close() })

	rt, err := router.New(registry, engine)
	require.NoError(t, err)

	a, err := New(rt, retrievers, engine)
	require.NoError(t, err)
	return a
}

func TestNew_Validation(t *testing.T) {
	engine := mock.NewMockEngine()
	registry := core.DefaultRegistry()
	layout := storage.NewLayout(t.TempDir())

	retrievers, err := retrieval.NewSet(registry, layout, mock.NewMockEmbedder())
	require.NoError(t, err)
	rt, err := router.New(registry, engine)
	require.NoError(t, err)

	_, err = New(nil, retrievers, engine)
	assert.ErrorIs(t, err, ErrRouterRequired)

	_, err = New(rt, nil, engine)
	assert.ErrorIs(t, err, ErrRetrieversRequired)

	_, err = New(rt, retrievers, nil)
	assert.ErrorIs(t, err, ErrEngineRequired)
}

func TestAnswer_Success(t *testing.T) {
	// First completion routes, second synthesizes.
	engine := mock.NewMockEngine("code", "Channels let goroutines communicate safely.\n")
	a := newTestAnswerer(t, engine, "code")

	response, domain, err := a.Answer(context.Background(), "How do goroutines communicate?")
	require.NoError(t, err)

	assert.Equal(t, "code", domain)
	assert.Equal(t, "Channels let goroutines communicate safely.", response)
	assert.Equal(t, 2, engine.CallCount())
}

func TestAnswer_SynthesisPromptContainsContext(t *testing.T) {
	engine := mock.NewMockEngine("code", "an answer")
	a := newTestAnswerer(t, engine, "code")

	question := "How do goroutines communicate?"
	_, _, err := a.Answer(context.Background(), question)
	require.NoError(t, err)

	prompts := engine.Prompts()
	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[1], "Channels provide typed communication between goroutines.")
	assert.Contains(t, prompts[1], question)
}

func TestAnswer_UnavailableEngine(t *testing.T) {
	a := newTestAnswerer(t, mock.NewUnavailableEngine(), "code")

	response, domain, err := a.Answer(context.Background(), "any question")

	// Never an error to the caller, always the sentinel pair.
	require.NoError(t, err)
	assert.Equal(t, UnavailableResponse, response)
	assert.Equal(t, core.ErrorDomain, domain)
}

func TestAnswer_UnknownRoutingLabel(t *testing.T) {
	engine := mock.NewMockEngine("medicine")
	a := newTestAnswerer(t, engine, "code")

	_, _, err := a.Answer(context.Background(), "question")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownDomain)
}

func TestAnswer_MissingIndex(t *testing.T) {
	// Routes to a valid domain that was never ingested.
	engine := mock.NewMockEngine("legal")
	a := newTestAnswerer(t, engine)

	_, _, err := a.Answer(context.Background(), "question")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrIndexNotFound)
}
