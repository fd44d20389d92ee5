package openai

import (
	"context"
	"log/slog"

	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Engine implements ai.CompletionEngine using OpenAI-compatible completion APIs.
type Engine struct {
	llm    *openai.LLM
	logger *slog.Logger
}

// newEngine is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEngine(config *ai.Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.CompletionHost),
		openai.WithToken("none"),
		openai.WithModel(config.CompletionModel),
	)
	if err != nil {
		return nil, err
	}

	return &Engine{
		llm:    client,
		logger: slog.Default().With("component", "openai-engine"),
	}, nil
}

// NewEngine creates a new completion engine using the provided configuration.
//
// Returns ai.CompletionEngine interface to enforce abstraction.
func NewEngine(config *ai.Config) (ai.CompletionEngine, error) {
	return newEngine(config)
}

// Complete generates a single completion for the prompt.
func (e *Engine) Complete(ctx context.Context, prompt string) (string, error) {
	e.logger.Debug("generating completion", "promptLength", len(prompt))

	out, err := llms.GenerateFromSinglePrompt(ctx, e.llm, prompt)
	if err != nil {
		e.logger.Error("failed to generate completion", "err", err)
		return "", err
	}

	return out, nil
}
