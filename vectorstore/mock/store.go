package mock

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/hunnit/stylist/core"
	"github.com/hunnit/stylist/vectorstore"
)

// MockStore is an in-memory vectorstore.Store for tests.
// It ranks by exact cosine similarity and honors the allow-list filter.
type MockStore struct {
	mu       sync.RWMutex
	dim      int
	created  bool
	points   map[core.ID]vectorstore.Point
	searches int

	// SearchFunc overrides Search entirely when set, letting tests hand
	// back a fixed chunk list without staging vectors.
	SearchFunc func(ctx context.Context, vector []float32, limit int, allowedIDs []core.ID) ([]core.CandidateChunk, error)
}

// NewMockStore creates an empty in-memory store.
// Note: returns concrete type to allow test staging and assertions.
func NewMockStore() *MockStore {
	return &MockStore{points: make(map[core.ID]vectorstore.Point)}
}

// EnsureCollection records the vector width. Idempotent.
func (m *MockStore) EnsureCollection(ctx context.Context, dim int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.created {
		m.created = true
		m.dim = dim
	}
	return nil
}

// Count reports the number of stored points.
func (m *MockStore) Count(ctx context.Context) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(len(m.points)), nil
}

// Upsert stores the points keyed by product ID.
func (m *MockStore) Upsert(ctx context.Context, points []vectorstore.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range points {
		m.points[p.ProductID] = p
	}
	return nil
}

// Search ranks stored points by cosine similarity against the query vector.
func (m *MockStore) Search(ctx context.Context, vector []float32, limit int, allowedIDs []core.ID) ([]core.CandidateChunk, error) {
	m.mu.Lock()
	m.searches++
	m.mu.Unlock()

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, vector, limit, allowedIDs)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var allowed map[core.ID]bool
	if len(allowedIDs) > 0 {
		allowed = make(map[core.ID]bool, len(allowedIDs))
		for _, id := range allowedIDs {
			allowed[id] = true
		}
	}

	chunks := make([]core.CandidateChunk, 0, len(m.points))
	for _, p := range m.points {
		if allowed != nil && !allowed[p.ProductID] {
			continue
		}
		chunks = append(chunks, core.CandidateChunk{
			ProductID:   p.ProductID,
			Score:       cosine(vector, p.Vector),
			Title:       p.Title,
			Category:    p.Category,
			Price:       p.Price,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			ProductURL:  p.ProductURL,
			ChunkText:   p.ChunkText,
		})
	}

	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].Score > chunks[j].Score
	})
	if len(chunks) > limit {
		chunks = chunks[:limit]
	}
	return chunks, nil
}

// Close is a no-op for the mock store.
func (m *MockStore) Close() error {
	return nil
}

// SearchCount returns how many times Search was called.
func (m *MockStore) SearchCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.searches
}

// Dim returns the vector width recorded by EnsureCollection.
func (m *MockStore) Dim() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dim
}

func cosine(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
