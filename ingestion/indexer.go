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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/hunnit/stylist/ai"
	"github.com/hunnit/stylist/catalog"
	"github.com/hunnit/stylist/core"
	"github.com/hunnit/stylist/vectorstore"
)

// Indexer builds the vector index from the catalog: one embedding per
// product, upserted keyed by product ID so re-indexing overwrites and
// never duplicates.
type Indexer struct {
	catalog    catalog.Repository
	store      vectorstore.Store
	embedder   ai.Embedder
	pool       *ants.Pool
	batchSize  int
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer) error

// WithPoolSize sets the worker pool size for concurrent embedding batches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}
		if ix.pool != nil {
			ix.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		ix.pool = pool
		return nil
	}
}

// WithBatchSize sets how many products are embedded per provider call.
// Default is 32.
func WithBatchSize(size int) Option {
	return func(ix *Indexer) error {
		if size < 1 {
			size = 1
		}
		ix.batchSize = size
		return nil
	}
}

// WithMaxRetries sets how many attempts each embedding batch gets
// before its error fails the run. Default is 3.
func WithMaxRetries(attempts int) Option {
	return func(ix *Indexer) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		ix.maxRetries = attempts
		return nil
	}
}

// WithRetryDelay sets the base delay of the exponential backoff between
// embedding attempts. Default is 1s.
func WithRetryDelay(delay time.Duration) Option {
	return func(ix *Indexer) error {
		ix.retryDelay = delay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// NewIndexer creates a new product indexer.
func NewIndexer(
	catalogRepo catalog.Repository,
	store vectorstore.Store,
	embedder ai.Embedder,
	opts ...Option,
) (*Indexer, error) {
	if catalogRepo == nil {
		return nil, ErrCatalogRequired
	}
	if store == nil {
		return nil, ErrVectorStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	ix := &Indexer{
		catalog:    catalogRepo,
		store:      store,
		embedder:   embedder,
		pool:       pool,
		batchSize:  32,
		maxRetries: 3,
		retryDelay: time.Second,
		logger:     slog.Default().With("component", "indexer"),
	}

	for _, opt := range opts {
		if optErr := opt(ix); optErr != nil {
			ix.Release()
			return nil, optErr
		}
	}

	return ix, nil
}

// IndexAll embeds every catalog product and upserts the points.
// Returns the number of products indexed.
//
// If skipIfIndexed is set and the collection already reports at least one
// stored point, the call is a no-op returning zero. This is a coarse
// "already bootstrapped" guard for process restarts, not a per-product
// diff: it does not detect partial or stale indexes.
func (ix *Indexer) IndexAll(ctx context.Context, skipIfIndexed bool) (int, error) {
	if skipIfIndexed {
		count, err := ix.store.Count(ctx)
		if err != nil {
			// Best-effort check, same as an empty collection.
			ix.logger.Warn("could not check collection point count", "err", err)
		} else if count > 0 {
			ix.logger.Info("collection already has points, skipping re-index", "points", count)
			return 0, nil
		}
	}

	products, err := ix.catalog.ListAllProducts(ctx)
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, nil
	}

	vectors, err := ix.embedBatches(ctx, products)
	if err != nil {
		return 0, err
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		ix.logger.Warn("embedder returned no vectors, nothing indexed")
		return 0, nil
	}

	// The first vector fixes the collection width; the store rejects any
	// later mismatch.
	if err := ix.store.EnsureCollection(ctx, len(vectors[0])); err != nil {
		return 0, err
	}

	points := make([]vectorstore.Point, len(products))
	for i, product := range products {
		points[i] = vectorstore.Point{
			ProductID:   product.ID,
			Vector:      vectors[i],
			Title:       product.Title,
			Category:    product.Category,
			Price:       product.Price,
			Description: product.Description,
			ImageURL:    product.ImageURL,
			ProductURL:  product.ProductURL,
			ChunkText:   ProductText(product),
		}
	}

	if err := ix.store.Upsert(ctx, points); err != nil {
		return 0, err
	}

	ix.logger.Info("indexed products", "count", len(products))
	return len(products), nil
}

// embedBatches embeds the products' text in batches on the worker pool,
// preserving input order.
func (ix *Indexer) embedBatches(ctx context.Context, products []*core.Product) ([][]float32, error) {
	vectors := make([][]float32, len(products))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(products); start += ix.batchSize {
		end := min(start+ix.batchSize, len(products))
		batch := products[start:end]
		offset := start

		wg.Add(1)
		submitErr := ix.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, product := range batch {
				texts[i] = ProductText(product)
			}

			// Transient provider failures (rate limits, connection
			// resets) get a few attempts before failing the whole run
			var embedded [][]float32
			err := RetryWithBackoff(ctx, func() error {
				var embedErr error
				embedded, embedErr = ix.embedder.EmbedTexts(ctx, texts)
				return embedErr
			}, ix.maxRetries, ix.retryDelay)
			if err == nil && len(embedded) != len(texts) {
				// A short batch would upsert nil vectors; fail it like
				// a provider error instead.
				err = fmt.Errorf("%w: got %d vectors for %d texts",
					ErrVectorCountMismatch, len(embedded), len(texts))
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			mu.Lock()
			for i, vec := range embedded {
				if offset+i < len(vectors) {
					vectors[offset+i] = vec
				}
			}
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return vectors, nil
}

// Release releases the worker pool.
// The indexer should not be used after calling Release.
func (ix *Indexer) Release() {
	if ix.pool != nil {
		ix.pool.Release()
	}
}
