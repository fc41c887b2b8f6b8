package vectorstore

import (
	"context"

	"github.com/hunnit/stylist/core"
)

// Point is one product embedding together with the denormalized display
// payload stored beside it. Points are keyed by product ID, so upserting
// the same product twice overwrites rather than duplicates.
type Point struct {
	ProductID   core.ID
	Vector      []float32
	Title       string
	Category    string
	Price       *float64
	Description string
	ImageURL    string
	ProductURL  string
	ChunkText   string
}

// Store is the similarity-store contract used by indexing and retrieval.
// Implementations must be thread-safe and support concurrent access.
type Store interface {
	// EnsureCollection creates the collection with the given vector width
	// and cosine distance if it does not exist yet. Idempotent: a no-op
	// when the collection is already present. Must be called before any
	// read or write against the collection.
	EnsureCollection(ctx context.Context, dim int) error

	// Count reports the number of points currently stored in the collection.
	Count(ctx context.Context) (uint64, error)

	// Upsert writes the points keyed by product ID.
	Upsert(ctx context.Context, points []Point) error

	// Search runs nearest-neighbor search for the vector, capped at limit.
	// A non-empty allowedIDs restricts hits to those product IDs via an
	// exact-match payload predicate. Results are ordered by descending
	// similarity score as reported by the store; a chunk whose payload
	// carries no product ID comes back with ProductID zero and is dropped
	// later during aggregation.
	Search(ctx context.Context, vector []float32, limit int, allowedIDs []core.ID) ([]core.CandidateChunk, error)

	// Close releases the underlying client connection.
	Close() error
}
