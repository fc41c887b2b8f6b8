package graph

import (
	"context"

	"github.com/hunnit/stylist/core"
)

// CandidateFilter narrows the catalog by graph constraints.
// Any dimension left at its zero value matches everything.
type CandidateFilter struct {
	// CategoryHint matches case-insensitively as a substring of the
	// product's category property or a linked Category node name.
	CategoryHint string

	// MaxPrice keeps products whose price is absent or at most this value.
	MaxPrice *float64

	// Tags keeps products where at least one tag appears, case-insensitively,
	// as a substring of a linked Feature name, the title, or the description.
	Tags []string
}

// ProductContext is the graph neighborhood of one product: its distinct
// linked Category and Feature names.
type ProductContext struct {
	ProductID  core.ID
	Title      string
	Categories []string
	Features   []string
}

// Store is the property-graph capability the knowledge graph adapter
// runs on. Implementations must be thread-safe.
type Store interface {
	// EnsureIndexes creates the lookup indexes (product_id, category and
	// feature names). Not required for correctness.
	EnsureIndexes(ctx context.Context) error

	// CountProducts returns the number of Product nodes in the graph.
	CountProducts(ctx context.Context) (int, error)

	// Wipe deletes every Product node (with its edges) and any Category
	// or Feature node left without edges afterwards.
	Wipe(ctx context.Context) error

	// UpsertProduct merges the Product node, its Category node and edge,
	// and its Feature nodes and edges. Merge semantics make repeated
	// application idempotent; Category/Feature nodes dedup by name.
	UpsertProduct(ctx context.Context, product *core.Product) error

	// CandidateIDs returns the distinct product IDs matching the filter.
	CandidateIDs(ctx context.Context, filter CandidateFilter) ([]core.ID, error)

	// ContextFor returns the graph neighborhood of each requested product.
	ContextFor(ctx context.Context, ids []core.ID) ([]ProductContext, error)

	// Close releases the underlying driver.
	Close(ctx context.Context) error
}
