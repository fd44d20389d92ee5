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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/tessellate-ai/ragmux"
	"github.com/tessellate-ai/ragmux/agent"
	"github.com/tessellate-ai/ragmux/ai"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "ragmux",
		Usage: "Multi-domain retrieval-augmented question answering",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "store-dir",
				Usage:   "Base directory for domain vector indices",
				EnvVars: []string{"RAGMUX_STORE_BASE"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Ingest a folder of documents into a domain index",
				Action: ingestCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "domain",
						Aliases:  []string{"d"},
						Usage:    "Domain label to ingest into",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "path",
						Aliases:  []string{"p"},
						Usage:    "Folder of source documents",
						Required: true,
					},
				}, aiFlags()...),
			},
			{
				Name:      "query",
				Usage:     "Route a question to a domain and answer it",
				ArgsUsage: "<question>",
				Action:    queryCommand,
				Flags:     aiFlags(),
			},
			{
				Name:   "domains",
				Usage:  "List registered domains and their index paths",
				Action: domainsCommand,
			},
			{
				Name:   "seed",
				Usage:  "Ingest a small built-in corpus into every registered domain",
				Action: seedCommand,
				Flags:  aiFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiFlags returns the service flags shared by every command that talks to the
// embedding or completion services. Defaults come from the environment.
func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
		},
		&cli.StringFlag{
			Name:  "completion-host",
			Usage: "Completion service host URL",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
		},
		&cli.StringFlag{
			Name:  "completion-model",
			Usage: "Completion model name",
		},
	}
}

// buildSystem assembles a System from the environment plus any flag overrides.
func buildSystem(c *cli.Context) (*ragmux.System, error) {
	cfg, err := ai.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	if host := c.String("embedding-host"); host != "" {
		cfg.EmbeddingHost = host
	}
	if host := c.String("completion-host"); host != "" {
		cfg.CompletionHost = host
	}
	if model := c.String("embedding-model"); model != "" {
		cfg.EmbeddingModel = model
	}
	if model := c.String("completion-model"); model != "" {
		cfg.CompletionModel = model
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return ragmux.NewSystem(
		ragmux.WithAIConfig(cfg),
		ragmux.WithBaseDir(c.String("store-dir")),
	)
}

func ingestCommand(c *cli.Context) error {
	system, err := buildSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	researcher, err := agent.NewResearchAgent(system)
	if err != nil {
		return err
	}

	result, err := researcher.Run(context.Background(), "ingest", c.String("domain"), c.String("path"))
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}

func queryCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: ragmux query <question>", 1)
	}
	question := c.Args().First()

	system, err := buildSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	response, domain, err := system.Answer(context.Background(), question)
	if err != nil {
		return err
	}

	fmt.Printf("[%s] -> %s\n", domain, response)
	return nil
}

func domainsCommand(c *cli.Context) error {
	system, err := ragmux.NewSystem(
		ragmux.WithBaseDir(c.String("store-dir")),
	)
	if err != nil {
		return err
	}
	defer system.Close()

	layout := system.Layout()
	for _, label := range system.Registry().Labels() {
		marker := " "
		if layout.Exists(label) {
			marker = "*"
		}
		fmt.Printf("%s %-10s %s\n", marker, label, layout.DomainPath(label))
	}
	return nil
}

// seedCorpus is a minimal sample document per reference domain, enough to
// exercise ingestion and retrieval end to end without external data.
var seedCorpus = map[string]string{
	"legal": `A contract is a legally binding agreement between two or more parties.
For a contract to be enforceable there must be an offer, an acceptance of that
offer, and consideration exchanged between the parties. A breach of contract
occurs when one party fails to perform its obligations, and the usual remedy
is damages that put the injured party in the position it would have occupied
had the contract been performed.

The statute of limitations restricts how long after an event legal proceedings
may be initiated. For written contracts the period is commonly between four
and six years depending on the jurisdiction.`,

	"code": `A goroutine is a lightweight thread of execution managed by the Go
runtime. Goroutines communicate through channels, which provide a typed
conduit for sending and receiving values. Sending on an unbuffered channel
blocks until another goroutine receives, which makes channels useful both for
communication and for synchronization.

The context package carries deadlines, cancellation signals and request-scoped
values across API boundaries. Functions that may block should accept a
context.Context as their first parameter and return early when it is canceled.`,

	"finance": `Compound interest is interest calculated on the initial principal
plus the accumulated interest of previous periods. An investment earning five
percent compounded annually doubles in roughly fourteen years, a consequence
of the rule of seventy-two.

Diversification reduces portfolio risk by spreading capital across assets
whose returns are not perfectly correlated. An index fund achieves broad
diversification at low cost by passively tracking a market index rather than
selecting individual securities.`,
}

func seedCommand(c *cli.Context) error {
	system, err := buildSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	researcher, err := agent.NewResearchAgent(system)
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, label := range system.Registry().Labels() {
		text, ok := seedCorpus[label]
		if !ok {
			continue
		}

		folder, err := os.MkdirTemp("", "ragmux-seed-"+label)
		if err != nil {
			return err
		}
		defer os.RemoveAll(folder)

		file := folder + string(os.PathSeparator) + label + ".txt"
		if err := os.WriteFile(file, []byte(text), 0o644); err != nil {
			return err
		}

		result, err := researcher.Run(ctx, "ingest", label, folder)
		if err != nil {
			return fmt.Errorf("seeding domain %q: %w", label, err)
		}
		fmt.Println(result)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
