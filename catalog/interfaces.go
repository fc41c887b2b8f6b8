package catalog

import (
	"context"

	"github.com/hunnit/stylist/core"
)

// Repository reads the relational product catalog, the system of record
// every derived view (vector index, knowledge graph) is rebuilt from.
// The pipeline only ever reads it. Implementations must be thread-safe.
type Repository interface {
	// ListAllProducts returns every product in the catalog.
	ListAllProducts(ctx context.Context) ([]*core.Product, error)

	// GetByIDs retrieves products by their IDs.
	// Returns only the products that exist (no error for missing IDs).
	GetByIDs(ctx context.Context, ids ...core.ID) ([]*core.Product, error)

	// CountProducts returns the number of products in the catalog.
	CountProducts(ctx context.Context) (int, error)

	// Close closes the catalog connection.
	Close() error
}

// Writer extends Repository with the write operations the seeder uses.
// The search pipeline never depends on this interface.
type Writer interface {
	Repository

	// AddProducts inserts or replaces products keyed by ID.
	AddProducts(ctx context.Context, products ...*core.Product) error
}
