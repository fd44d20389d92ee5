package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.CompletionHost)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	assert.Equal(t, "llama3.1", cfg.CompletionModel)
	assert.Equal(t, DefaultModelPath, cfg.ModelPath)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://remote:8080/v1"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithCompletionModel("qwen2.5:3b"),
		WithModelPath("/models/custom.gguf"),
	)

	assert.Equal(t, "http://remote:8080/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://remote:8080/v1", cfg.CompletionHost)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, "qwen2.5:3b", cfg.CompletionModel)
	assert.Equal(t, "/models/custom.gguf", cfg.ModelPath)
}

func TestNewConfig_SplitHosts(t *testing.T) {
	cfg := NewConfig(
		WithEmbeddingHost("http://embed:8080/v1"),
		WithCompletionHost("http://complete:8080/v1"),
	)

	assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://complete:8080/v1", cfg.CompletionHost)
}

func TestConfig_Normalize_AppendsV1(t *testing.T) {
	cfg := NewConfig(WithHost("http://localhost:11434"))
	cfg.Normalize()

	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.CompletionHost)
}

func TestConfig_Normalize_TrailingSlash(t *testing.T) {
	cfg := NewConfig(WithHost("http://localhost:11434/"))
	cfg.Normalize()

	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
}

func TestConfig_Normalize_Idempotent(t *testing.T) {
	cfg := NewConfig(WithHost("http://localhost:11434/v1"))
	cfg.Normalize()
	cfg.Normalize()

	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
}

func TestConfig_Validate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing completion host", func(c *Config) { c.CompletionHost = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing completion model", func(c *Config) { c.CompletionModel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RAGMUX_EMBEDDING_HOST", "http://env-host:9000/v1")
	t.Setenv("RAGMUX_COMPLETION_MODEL", "env-model")
	t.Setenv("LLAMA_MODEL_PATH", "/env/model.gguf")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://env-host:9000/v1", cfg.EmbeddingHost)
	assert.Equal(t, "env-model", cfg.CompletionModel)
	assert.Equal(t, "/env/model.gguf", cfg.ModelPath)

	// Unset variables keep their defaults.
	assert.Equal(t, "http://localhost:11434/v1", cfg.CompletionHost)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
}
