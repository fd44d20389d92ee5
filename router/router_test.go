package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tessellate-ai/ragmux/ai/mock"
	"github.com/tessellate-ai/ragmux/core"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, mock.NewMockEngine())
	assert.ErrorIs(t, err, ErrRegistryRequired)

	_, err = New(core.DefaultRegistry(), nil)
	assert.ErrorIs(t, err, ErrEngineRequired)
}

func TestRoute_ValidLabel(t *testing.T) {
	engine := mock.NewMockEngine("legal")
	r, err := New(core.DefaultRegistry(), engine)
	require.NoError(t, err)

	domain, err := r.Route(context.Background(), "Can my landlord evict me without notice?")
	require.NoError(t, err)
	assert.Equal(t, core.Domain("legal"), domain)
	assert.Equal(t, 1, engine.CallCount())
}

func TestRoute_NormalizesModelOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     core.Domain
	}{
		{"trailing newline", "code\n", core.Domain("code")},
		{"uppercase", "FINANCE", core.Domain("finance")},
		{"padded", "  legal  ", core.Domain("legal")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(core.DefaultRegistry(), mock.NewMockEngine(tt.response))
			require.NoError(t, err)

			domain, err := r.Route(context.Background(), "question")
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain)
		})
	}
}

func TestRoute_UnknownLabel(t *testing.T) {
	for _, response := range []string{"medicine", "", "This looks like a legal question to me."} {
		r, err := New(core.DefaultRegistry(), mock.NewMockEngine(response))
		require.NoError(t, err)

		_, err = r.Route(context.Background(), "question")
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrUnknownDomain)
	}
}

func TestRoute_UnavailableEngine(t *testing.T) {
	r, err := New(core.DefaultRegistry(), mock.NewUnavailableEngine())
	require.NoError(t, err)

	_, err = r.Route(context.Background(), "question")
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrEngineUnavailable)
}

func TestRoute_PromptContainsLabelsAndQuestion(t *testing.T) {
	engine := mock.NewMockEngine("code")
	r, err := New(core.DefaultRegistry(), engine)
	require.NoError(t, err)

	question := "How do I read a file in Go?"
	_, err = r.Route(context.Background(), question)
	require.NoError(t, err)

	prompts := engine.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "legal, code, finance")
	assert.Contains(t, prompts[0], question)
}

func TestRoute_SingleCallPerQuestion(t *testing.T) {
	engine := mock.NewMockEngine("medicine")
	r, err := New(core.DefaultRegistry(), engine)
	require.NoError(t, err)

	// A bad routing decision is not retried.
	_, err = r.Route(context.Background(), "question")
	require.Error(t, err)
	assert.Equal(t, 1, engine.CallCount())
}
