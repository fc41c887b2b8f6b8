package mock

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hunnit/stylist/core"
	"github.com/hunnit/stylist/graph"
)

// MockStore is an in-memory graph.Store for tests.
// It mirrors the merge/dedup semantics of the production store and allows
// error injection via the Err field.
type MockStore struct {
	mu       sync.RWMutex
	products map[core.ID]*core.Product
	wipes    int
	upserts  int

	// Err, when set, is returned by every operation. Used to test the
	// degrade-to-empty behavior of the adapter.
	Err error
}

// NewMockStore creates an empty in-memory graph store.
// Note: returns concrete type to allow test staging and assertions.
func NewMockStore() *MockStore {
	return &MockStore{products: make(map[core.ID]*core.Product)}
}

// EnsureIndexes is a no-op (or the injected error).
func (m *MockStore) EnsureIndexes(ctx context.Context) error {
	return m.Err
}

// CountProducts returns the number of Product nodes.
func (m *MockStore) CountProducts(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.products), nil
}

// Wipe removes every Product node. Category/Feature nodes are derived on
// read in this mock, so dropping products drops their orphans too.
func (m *MockStore) Wipe(ctx context.Context) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = make(map[core.ID]*core.Product)
	m.wipes++
	return nil
}

// UpsertProduct merges the product by ID.
func (m *MockStore) UpsertProduct(ctx context.Context, product *core.Product) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	m.upserts++
	return nil
}

// CandidateIDs applies the filter with the same substring semantics as
// the production cypher.
func (m *MockStore) CandidateIDs(ctx context.Context, filter graph.CandidateFilter) ([]core.ID, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	hint := strings.ToLower(filter.CategoryHint)
	tags := make([]string, 0, len(filter.Tags))
	for _, tag := range filter.Tags {
		if tag != "" {
			tags = append(tags, strings.ToLower(tag))
		}
	}

	ids := make([]core.ID, 0, len(m.products))
	for id, p := range m.products {
		if hint != "" && !strings.Contains(strings.ToLower(p.Category), hint) {
			continue
		}
		if filter.MaxPrice != nil && p.Price != nil && *p.Price > *filter.MaxPrice {
			continue
		}
		if len(tags) > 0 && !anyTagMatches(p, tags) {
			continue
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func anyTagMatches(p *core.Product, tags []string) bool {
	title := strings.ToLower(p.Title)
	description := strings.ToLower(p.Description)
	features := make([]string, 0)
	for _, f := range p.Features.Labels() {
		features = append(features, strings.ToLower(f))
	}

	for _, tag := range tags {
		if strings.Contains(title, tag) || strings.Contains(description, tag) {
			return true
		}
		for _, f := range features {
			if strings.Contains(f, tag) {
				return true
			}
		}
	}
	return false
}

// ContextFor returns the neighborhood of each requested product that exists.
func (m *MockStore) ContextFor(ctx context.Context, ids []core.ID) ([]graph.ProductContext, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	contexts := make([]graph.ProductContext, 0, len(ids))
	for _, id := range ids {
		p, ok := m.products[id]
		if !ok {
			continue
		}
		pc := graph.ProductContext{
			ProductID: id,
			Title:     p.Title,
			Features:  p.Features.Labels(),
		}
		if p.Category != "" {
			pc.Categories = []string{p.Category}
		}
		contexts = append(contexts, pc)
	}
	return contexts, nil
}

// Close is a no-op for the mock store.
func (m *MockStore) Close(ctx context.Context) error {
	return nil
}

// WipeCount returns how many times Wipe was called.
func (m *MockStore) WipeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.wipes
}

// UpsertCount returns how many times UpsertProduct was called.
func (m *MockStore) UpsertCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.upserts
}

// SeedProducts stages products directly, bypassing the sync state machine.
func (m *MockStore) SeedProducts(products ...*core.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range products {
		m.products[p.ID] = p
	}
}
