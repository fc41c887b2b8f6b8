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


// Package stylist assembles the retrieval-augmented product search
// pipeline: SQLite catalog, Qdrant vector index, optional Neo4j
// knowledge graph, and OpenAI-compatible embedding/generation providers.
package stylist

import (
	"context"
	"log/slog"

	"github.com/hunnit/stylist/ai"
	"github.com/hunnit/stylist/ai/openai"
	"github.com/hunnit/stylist/answer"
	"github.com/hunnit/stylist/catalog"
	"github.com/hunnit/stylist/catalog/sqlite"
	"github.com/hunnit/stylist/graph"
	"github.com/hunnit/stylist/graph/neo4j"
	"github.com/hunnit/stylist/httpapi"
	"github.com/hunnit/stylist/ingestion"
	"github.com/hunnit/stylist/search"
	"github.com/hunnit/stylist/vectorstore"
	"github.com/hunnit/stylist/vectorstore/qdrant"
)

// App owns the shared clients of the pipeline. Every client is created
// once and reused across requests; the factory methods hand out
// components wired to them.
type App struct {
	catalog     catalog.Repository
	store       vectorstore.Store
	graph       *graph.Graph
	provider    ai.Provider
	temperature float64
	logger      *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	aiConfig *ai.Config
	qdrant   qdrant.Config
	neo4j    *neo4j.Config

	// injected components, mainly for tests
	catalogRepo catalog.Repository
	store       vectorstore.Store
	graphStore  graph.Store
	provider    ai.Provider
}

// WithAIConfig sets the embedding and generation provider configuration.
func WithAIConfig(config *ai.Config) AppOption {
	return func(o *appOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithQdrant sets the vector store connection configuration.
func WithQdrant(config qdrant.Config) AppOption {
	return func(o *appOptions) {
		o.qdrant = config
	}
}

// WithNeo4j enables the knowledge graph. Without this option the graph
// is disabled and the pipeline runs on vector retrieval plus generation.
func WithNeo4j(config neo4j.Config) AppOption {
	return func(o *appOptions) {
		o.neo4j = &config
	}
}

// WithCatalog injects a pre-built catalog repository.
func WithCatalog(repo catalog.Repository) AppOption {
	return func(o *appOptions) {
		o.catalogRepo = repo
	}
}

// WithVectorStore injects a pre-built vector store.
func WithVectorStore(store vectorstore.Store) AppOption {
	return func(o *appOptions) {
		o.store = store
	}
}

// WithGraphStore injects a pre-built graph store.
func WithGraphStore(store graph.Store) AppOption {
	return func(o *appOptions) {
		o.graphStore = store
	}
}

// WithProvider injects a pre-built AI provider.
func WithProvider(provider ai.Provider) AppOption {
	return func(o *appOptions) {
		o.provider = provider
	}
}

// NewApp opens the catalog at catalogPath and connects the configured
// backing services. Injected components take precedence over the
// corresponding configuration.
func NewApp(catalogPath string, opts ...AppOption) (*App, error) {
	options := &appOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	catalogRepo := options.catalogRepo
	if catalogRepo == nil {
		repo, err := sqlite.NewStore(catalogPath)
		if err != nil {
			return nil, err
		}
		catalogRepo = repo
	}

	store := options.store
	if store == nil {
		s, err := qdrant.NewStore(options.qdrant)
		if err != nil {
			catalogRepo.Close()
			return nil, err
		}
		store = s
	}

	provider := options.provider
	if provider == nil {
		p, err := openai.NewProvider(options.aiConfig)
		if err != nil {
			store.Close()
			catalogRepo.Close()
			return nil, err
		}
		provider = p
	}

	graphStore := options.graphStore
	if graphStore == nil && options.neo4j != nil {
		gs, err := neo4j.NewStore(*options.neo4j)
		if err != nil {
			provider.Close()
			store.Close()
			catalogRepo.Close()
			return nil, err
		}
		graphStore = gs
	}

	return &App{
		catalog:     catalogRepo,
		store:       store,
		graph:       graph.New(graphStore),
		provider:    provider,
		temperature: options.aiConfig.Temperature,
		logger:      slog.Default(),
	}, nil
}

// Close releases every client. The app should not be used afterwards.
func (a *App) Close(ctx context.Context) error {
	// Close AI provider first
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.graph.Close(ctx); err != nil {
		a.logger.Error("error closing graph store", "err", err)
	}

	if err := a.store.Close(); err != nil {
		a.logger.Error("error closing vector store", "err", err)
		return err
	}

	if err := a.catalog.Close(); err != nil {
		a.logger.Error("error closing catalog", "err", err)
		return err
	}
	return nil
}

func (a *App) Catalog() catalog.Repository {
	return a.catalog
}

func (a *App) VectorStore() vectorstore.Store {
	return a.store
}

func (a *App) Graph() *graph.Graph {
	return a.graph
}

func (a *App) Provider() ai.Provider {
	return a.provider
}

func (a *App) NewIndexer(opts ...ingestion.Option) (*ingestion.Indexer, error) {
	return ingestion.NewIndexer(a.catalog, a.store, a.provider.Embedder(), opts...)
}

func (a *App) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	synthesizer, err := answer.NewSynthesizer(
		a.provider.Primary(),
		a.provider.Fallback(),
		answer.WithTemperature(a.temperature),
	)
	if err != nil {
		return nil, err
	}
	return search.NewSearcher(a.provider.Embedder(), a.store, a.graph, synthesizer, opts...)
}

func (a *App) NewServer(opts ...httpapi.Option) (*httpapi.Server, error) {
	searcher, err := a.NewSearcher()
	if err != nil {
		return nil, err
	}
	return httpapi.NewServer(searcher, opts...)
}

// Bootstrap indexes the catalog and syncs the knowledge graph if either
// looks empty. Both steps are best-effort: a missing Qdrant or Neo4j
// must not keep the process from serving.
func (a *App) Bootstrap(ctx context.Context) {
	indexer, err := a.NewIndexer()
	if err != nil {
		a.logger.Error("error creating indexer, skipping startup indexing", "err", err)
		return
	}
	defer indexer.Release()

	indexed, err := indexer.IndexAll(ctx, true)
	if err != nil {
		a.logger.Error("error during startup indexing", "err", err)
	}

	products, err := a.catalog.ListAllProducts(ctx)
	if err != nil {
		a.logger.Error("error loading catalog for graph sync", "err", err)
		return
	}

	synced, err := a.graph.Sync(ctx, products, true)
	if err != nil {
		a.logger.Error("error during startup graph sync", "err", err)
	}

	a.logger.Info("startup sync finished", "indexedProducts", indexed, "graphProducts", synced)
}
