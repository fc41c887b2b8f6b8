// Copyright 2025 Hunnit Labs
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
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/hunnit/stylist"
	"github.com/hunnit/stylist/ai"
	"github.com/hunnit/stylist/graph/neo4j"
	"github.com/hunnit/stylist/vectorstore/qdrant"
)

// sharedFlags are the backing-service flags every command accepts.
// Environment variables let the same binary run unchanged in compose
// setups and on a laptop with a .env file.
var sharedFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to the SQLite catalog database",
		Value:   "stylist.db",
		EnvVars: []string{"STYLIST_DB"},
	},
	&cli.StringFlag{
		Name:    "qdrant-host",
		Usage:   "Qdrant gRPC host",
		Value:   "localhost",
		EnvVars: []string{"QDRANT_HOST"},
	},
	&cli.IntFlag{
		Name:    "qdrant-port",
		Usage:   "Qdrant gRPC port",
		Value:   6334,
		EnvVars: []string{"QDRANT_PORT"},
	},
	&cli.StringFlag{
		Name:    "qdrant-api-key",
		Usage:   "Qdrant API key (empty for unauthenticated local instances)",
		EnvVars: []string{"QDRANT_API_KEY"},
	},
	&cli.StringFlag{
		Name:    "qdrant-collection",
		Usage:   "Qdrant collection name",
		Value:   "products",
		EnvVars: []string{"QDRANT_COLLECTION"},
	},
	&cli.StringFlag{
		Name:    "neo4j-uri",
		Usage:   "Neo4j bolt URI (empty disables the knowledge graph)",
		EnvVars: []string{"NEO4J_URI"},
	},
	&cli.StringFlag{
		Name:    "neo4j-user",
		Usage:   "Neo4j username",
		Value:   "neo4j",
		EnvVars: []string{"NEO4J_USER"},
	},
	&cli.StringFlag{
		Name:    "neo4j-password",
		Usage:   "Neo4j password",
		EnvVars: []string{"NEO4J_PASSWORD"},
	},
	&cli.StringFlag{
		Name:    "embedding-host",
		Usage:   "Embedding service host URL",
		Value:   "http://localhost:11434/v1",
		EnvVars: []string{"EMBEDDING_HOST"},
	},
	&cli.StringFlag{
		Name:    "embedding-model",
		Usage:   "Embedding model name",
		Value:   "bge-m3",
		EnvVars: []string{"EMBEDDING_MODEL"},
	},
	&cli.StringFlag{
		Name:    "embedding-token",
		Usage:   "Embedding service API token",
		EnvVars: []string{"EMBEDDING_TOKEN"},
	},
	&cli.StringFlag{
		Name:    "primary-host",
		Usage:   "Primary generation provider host URL",
		Value:   "https://api.groq.com/openai/v1",
		EnvVars: []string{"PRIMARY_HOST"},
	},
	&cli.StringFlag{
		Name:    "primary-model",
		Usage:   "Primary generation model name",
		Value:   "llama-3.1-8b-instant",
		EnvVars: []string{"PRIMARY_MODEL"},
	},
	&cli.StringFlag{
		Name:    "primary-token",
		Usage:   "Primary generation provider API token",
		EnvVars: []string{"GROQ_API_KEY"},
	},
	&cli.StringFlag{
		Name:    "fallback-host",
		Usage:   "Fallback generation provider host URL (empty disables the fallback)",
		Value:   "https://api.openai.com/v1",
		EnvVars: []string{"FALLBACK_HOST"},
	},
	&cli.StringFlag{
		Name:    "fallback-model",
		Usage:   "Fallback generation model name",
		Value:   "gpt-4.1",
		EnvVars: []string{"FALLBACK_MODEL"},
	},
	&cli.StringFlag{
		Name:    "fallback-token",
		Usage:   "Fallback generation provider API token",
		EnvVars: []string{"OPENAI_API_KEY"},
	},
}

func main() {
	// Local development keeps credentials in a .env file
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "stylist",
		Usage: "Retrieval-augmented product search for the Hunnit catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API (indexes and syncs on startup if needed)",
				Action: serveCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "HTTP listen address",
						Value:   ":8000",
						EnvVars: []string{"STYLIST_ADDR"},
					},
				}, sharedFlags...),
			},
			{
				Name:   "index",
				Usage:  "Embed and index the catalog into the vector store",
				Action: indexCommand,
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "skip-if-indexed",
						Usage: "Skip indexing when the collection already has points",
					},
				}, sharedFlags...),
			},
			{
				Name:   "sync",
				Usage:  "Synchronize the catalog into the knowledge graph",
				Action: syncCommand,
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "skip-if-exists",
						Usage: "Skip when the graph already matches the catalog count",
					},
				}, sharedFlags...),
			},
			{
				Name:      "search",
				Usage:     "Run a single query through the pipeline and print the response",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     sharedFlags,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openApp builds the application from the shared flags.
func openApp(c *cli.Context) (*stylist.App, error) {
	opts := []stylist.AppOption{
		stylist.WithQdrant(qdrant.Config{
			Host:       c.String("qdrant-host"),
			Port:       c.Int("qdrant-port"),
			APIKey:     c.String("qdrant-api-key"),
			Collection: c.String("qdrant-collection"),
		}),
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithEmbeddingToken(c.String("embedding-token")),
		ai.WithPrimary(c.String("primary-host"), c.String("primary-model"), c.String("primary-token")),
		ai.WithFallback(c.String("fallback-host"), c.String("fallback-model"), c.String("fallback-token")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	opts = append(opts, stylist.WithAIConfig(aiConfig))

	if uri := c.String("neo4j-uri"); uri != "" {
		opts = append(opts, stylist.WithNeo4j(neo4j.Config{
			URI:      uri,
			Username: c.String("neo4j-user"),
			Password: c.String("neo4j-password"),
		}))
	}

	app, err := stylist.NewApp(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return app, nil
}

func serveCommand(c *cli.Context) error {
	ctx := c.Context

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	app.Bootstrap(ctx)

	server, err := app.NewServer()
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}

	addr := c.String("addr")
	slog.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, server.Router())
}

func indexCommand(c *cli.Context) error {
	ctx := c.Context

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	indexer, err := app.NewIndexer()
	if err != nil {
		return fmt.Errorf("failed to create indexer: %w", err)
	}
	defer indexer.Release()

	indexed, err := indexer.IndexAll(ctx, c.Bool("skip-if-indexed"))
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed products: %d\n", indexed)
	return nil
}

func syncCommand(c *cli.Context) error {
	ctx := c.Context

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	if !app.Graph().Enabled() {
		return fmt.Errorf("knowledge graph is disabled: set --neo4j-uri")
	}

	products, err := app.Catalog().ListAllProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	synced, err := app.Graph().Sync(ctx, products, c.Bool("skip-if-exists"))
	if err != nil {
		return fmt.Errorf("graph sync failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Products synced: %d\n", synced)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close(c.Context)

	searcher, err := app.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	resp, err := searcher.RunSearch(c.Context, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
