package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrUnsupportedCommand is returned for commands the agent doesn't know.
	ErrUnsupportedCommand = errors.New("unsupported command")

	// ErrBadArguments is returned when a command is missing arguments.
	ErrBadArguments = errors.New("bad command arguments")

	// ErrIngestorRequired is returned when an ingestor is not provided.
	ErrIngestorRequired = errors.New("ingestor required")
)

// Ingestor ingests a source folder into a domain index and returns a
// human-readable result message.
type Ingestor interface {
	IngestFolder(ctx context.Context, domain, folder string) (string, error)
}

// ResearchAgent runs ingestion commands against an Ingestor.
type ResearchAgent struct {
	ingestor Ingestor
	logger   *slog.Logger
}

// NewResearchAgent creates an agent over the given ingestor.
func NewResearchAgent(ingestor Ingestor) (*ResearchAgent, error) {
	if ingestor == nil {
		return nil, ErrIngestorRequired
	}
	return &ResearchAgent{
		ingestor: ingestor,
		logger:   slog.Default().With("component", "research-agent"),
	}, nil
}

// Run executes a command. Supported commands:
//
//	ingest <domain> <folder>
//
// Anything else fails with ErrUnsupportedCommand.
func (a *ResearchAgent) Run(ctx context.Context, command string, args ...string) (string, error) {
	switch command {
	case "ingest":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: ingest needs <domain> <folder>", ErrBadArguments)
		}
		return a.ingestor.IngestFolder(ctx, args[0], args[1])
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCommand, command)
	}
}
