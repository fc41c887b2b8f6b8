package core

// ID is the unique identifier of a catalog product.
// It is assigned by the relational catalog and is the join key across
// every subsystem: vector payloads, graph node keys, and rerank maps.
type ID int64

// Product is a read-only projection of a catalog row.
// The relational catalog is the system of record; the vector index and
// the knowledge graph are both derived views of it.
type Product struct {
	ID          ID
	Title       string
	Category    string
	Price       *float64 // nil when the catalog has no price
	Description string
	ImageURL    string
	ProductURL  string
	Features    FeatureSet
}

// CandidateChunk is a single scored retrieval hit prior to per-product
// aggregation. Multiple chunks may reference the same product.
type CandidateChunk struct {
	ProductID   ID
	Score       float32
	Title       string
	Category    string
	Price       *float64
	Description string
	ImageURL    string
	ProductURL  string
	ChunkText   string
}

// RankedResult is one entry of the final answer. It lives only for the
// duration of a single query and is never persisted.
type RankedResult struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	ProductURL  string   `json:"product_url"`
	Score       float32  `json:"score"`
}

// SearchResponse pairs the generated answer text with the capped,
// reranked product list.
type SearchResponse struct {
	Answer  string         `json:"answer"`
	Results []RankedResult `json:"results"`
}
