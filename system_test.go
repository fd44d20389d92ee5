package ragmux

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessellate-ai/ragmux/agent"
	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tessellate-ai/ragmux/ai/mock"
	"github.com/tessellate-ai/ragmux/core"
)

func setupTestSystem(t *testing.T, engine ai.CompletionEngine) *System {
	t.Helper()

	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), engine)
	system, err := NewSystem(
		WithProvider(provider),
		WithBaseDir(t.TempDir()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { system.Close() })
	return system
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSystem_IngestFolder(t *testing.T) {
	system := setupTestSystem(t, mock.NewMockEngine())

	folder := t.TempDir()
	writeDoc(t, folder, "doc.txt", "A short document about nothing in particular.")

	result, err := system.IngestFolder(context.Background(), "demo", folder)
	require.NoError(t, err)

	assert.Contains(t, result, "Ingested 1 chunks")
	assert.Contains(t, result, "demo_chroma")

	// The index directory exists on disk under the configured base.
	info, err := os.Stat(system.Layout().DomainPath("demo"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSystem_IngestFolder_InvalidLabel(t *testing.T) {
	system := setupTestSystem(t, mock.NewMockEngine())

	_, err := system.IngestFolder(context.Background(), "Not A Label", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidLabel)
}

func TestSystem_IngestFolder_MissingFolder(t *testing.T) {
	system := setupTestSystem(t, mock.NewMockEngine())

	result, err := system.IngestFolder(context.Background(), "demo", filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Contains(t, result, "Ingested 0 chunks")

	// A zero-chunk ingest still creates the domain's index location.
	info, err := os.Stat(system.Layout().DomainPath("demo"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSystem_AnswerAfterIngest(t *testing.T) {
	// First completion routes, second synthesizes.
	engine := mock.NewMockEngine("code", "Use the context package for cancellation.")
	system := setupTestSystem(t, engine)

	folder := t.TempDir()
	writeDoc(t, folder, "go.txt", "The context package carries cancellation signals across API boundaries.")

	_, err := system.IngestFolder(context.Background(), "code", folder)
	require.NoError(t, err)

	response, domain, err := system.Answer(context.Background(), "How do I cancel work in Go?")
	require.NoError(t, err)

	assert.Equal(t, "code", domain)
	assert.Equal(t, "Use the context package for cancellation.", response)
}

func TestSystem_Answer_UnavailableEngine(t *testing.T) {
	system := setupTestSystem(t, mock.NewUnavailableEngine())

	response, domain, err := system.Answer(context.Background(), "any question")

	require.NoError(t, err)
	assert.Equal(t, core.ErrorDomain, domain)
	assert.Contains(t, response, "Error:")
}

func TestSystem_Answer_UnknownDomainFromRouter(t *testing.T) {
	system := setupTestSystem(t, mock.NewMockEngine("astrology"))

	_, _, err := system.Answer(context.Background(), "question")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownDomain)
}

// The research agent consumes the system through its Ingestor interface.
var _ agent.Ingestor = (*System)(nil)
