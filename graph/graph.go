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


package graph

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hunnit/stylist/core"
)

// Graph is the knowledge graph adapter. It keeps the graph synchronized
// with the catalog and serves the two read paths the pipeline uses:
// constraint-based candidate filtering and grounding-context generation.
//
// A disabled or nil-store Graph degrades every call to an empty result;
// the pipeline stays fully functional on vector search plus generation.
type Graph struct {
	store   Store
	enabled bool
	logger  *slog.Logger
}

// Option configures a Graph.
type Option func(*Graph)

// WithEnabled toggles the knowledge graph feature.
// Default is enabled when a store is provided.
func WithEnabled(enabled bool) Option {
	return func(g *Graph) {
		g.enabled = enabled
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
	}
}

// New creates the knowledge graph adapter. A nil store disables the
// feature entirely.
func New(store Store, opts ...Option) *Graph {
	g := &Graph{
		store:   store,
		enabled: store != nil,
		logger:  slog.Default().With("component", "graph"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.enabled = false
	}
	return g
}

// Enabled reports whether the knowledge graph feature is active.
func (g *Graph) Enabled() bool {
	return g.enabled
}

// Sync pushes the catalog into the graph as Product/Category/Feature
// nodes. The decision is keyed on comparing the existing Product-node
// count E to the catalog count D:
//
//   - feature disabled, or D == 0                     → no-op, returns 0
//   - skipIfExists and E == D and E > 0               → assumed synced, returns 0
//   - E != 0 and E != D                               → full wipe, then rebuild
//   - otherwise (E == 0, or after the wipe)           → rebuild
//
// The graph is a cache of the catalog, so any detectable drift triggers a
// conservative full rebuild rather than incremental reconciliation.
// Merge semantics make re-running the rebuild idempotent. Returns the
// number of products synced.
func (g *Graph) Sync(ctx context.Context, products []*core.Product, skipIfExists bool) (int, error) {
	if !g.enabled {
		g.logger.Info("knowledge graph disabled, skipping sync")
		return 0, nil
	}
	if len(products) == 0 {
		return 0, nil
	}

	// Index creation failure should never break startup.
	if err := g.store.EnsureIndexes(ctx); err != nil {
		g.logger.Warn("skipping graph index creation", "err", err)
	}

	catalogCount := len(products)

	existing, err := g.store.CountProducts(ctx)
	if err != nil {
		return 0, err
	}

	if skipIfExists && existing == catalogCount && existing > 0 {
		g.logger.Info("knowledge graph already synced, skipping",
			"productNodes", existing, "catalogProducts", catalogCount)
		return 0, nil
	}

	if existing != 0 && existing != catalogCount {
		g.logger.Warn("knowledge graph drifted from catalog, rebuilding from scratch",
			"productNodes", existing, "catalogProducts", catalogCount)
		if err := g.store.Wipe(ctx); err != nil {
			return 0, err
		}
	}

	for _, product := range products {
		if err := g.store.UpsertProduct(ctx, product); err != nil {
			return 0, err
		}
	}

	g.logger.Info("knowledge graph synced", "products", catalogCount)
	return catalogCount, nil
}

// CandidateIDs returns the product IDs matching the filter.
// Degrades to an empty set when the graph is disabled or unreachable.
func (g *Graph) CandidateIDs(ctx context.Context, filter CandidateFilter) ([]core.ID, error) {
	if !g.enabled {
		return nil, nil
	}

	ids, err := g.store.CandidateIDs(ctx, filter)
	if err != nil {
		g.logger.Warn("graph candidate filtering unavailable", "err", err)
		return nil, nil
	}
	return ids, nil
}

// ContextBlocks returns one human-readable text block per requested
// product, listing its distinct linked Category and Feature names. The
// blocks are grounding text for generation only; they never affect the
// base similarity score. Degrades to empty when the graph is disabled or
// unreachable.
func (g *Graph) ContextBlocks(ctx context.Context, ids []core.ID) []string {
	if !g.enabled || len(ids) == 0 {
		return nil
	}

	contexts, err := g.store.ContextFor(ctx, ids)
	if err != nil {
		g.logger.Warn("graph context unavailable", "err", err)
		return nil
	}

	blocks := make([]string, 0, len(contexts))
	for _, pc := range contexts {
		blocks = append(blocks, FormatContext(pc))
	}
	return blocks
}

// FormatContext renders one product's graph neighborhood as grounding text.
func FormatContext(pc ProductContext) string {
	categories := "N/A"
	if len(pc.Categories) > 0 {
		categories = strings.Join(pc.Categories, ", ")
	}
	features := "N/A"
	if len(pc.Features) > 0 {
		features = strings.Join(pc.Features, ", ")
	}

	return "Product: " + pc.Title + "\n" +
		"Categories: " + categories + "\n" +
		"Features: " + features
}

// Close releases the underlying store.
func (g *Graph) Close(ctx context.Context) error {
	if g.store == nil {
		return nil
	}
	return g.store.Close(ctx)
}
