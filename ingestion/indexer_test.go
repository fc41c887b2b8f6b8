package ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hunnit/stylist/ai/mock"
	"github.com/hunnit/stylist/catalog/sqlite"
	"github.com/hunnit/stylist/core"
	vsmock "github.com/hunnit/stylist/vectorstore/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func seedCatalog(t *testing.T, products ...*core.Product) *sqlite.Store {
	t.Helper()
	store, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	if len(products) > 0 {
		require.NoError(t, store.AddProducts(context.Background(), products...))
	}
	return store
}

func TestNewIndexer(t *testing.T) {
	catalogRepo := seedCatalog(t)
	store := vsmock.NewMockStore()
	embedder := mock.NewMockEmbedder()

	t.Run("valid configuration", func(t *testing.T) {
		ix, err := NewIndexer(catalogRepo, store, embedder)
		require.NoError(t, err)
		defer ix.Release()
		assert.NotNil(t, ix)
	})

	t.Run("with options", func(t *testing.T) {
		ix, err := NewIndexer(catalogRepo, store, embedder,
			WithPoolSize(2), WithBatchSize(8), WithLogger(nil))
		require.NoError(t, err)
		defer ix.Release()
		assert.NotNil(t, ix)
	})

	t.Run("nil catalog", func(t *testing.T) {
		_, err := NewIndexer(nil, store, embedder)
		assert.Equal(t, ErrCatalogRequired, err)
	})

	t.Run("nil vector store", func(t *testing.T) {
		_, err := NewIndexer(catalogRepo, nil, embedder)
		assert.Equal(t, ErrVectorStoreRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewIndexer(catalogRepo, store, nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})
}

func TestIndexAll(t *testing.T) {
	ctx := context.Background()

	products := []*core.Product{
		{ID: 1, Title: "Essential Oversized Hoodie", Category: "hoodie", Price: ptr(1799),
			Description: "Heavyweight fleece hoodie.",
			Features:    core.FeaturesFromList([]string{"fleece", "kangaroo pocket"})},
		{ID: 2, Title: "Core Training Tee", Category: "tshirt",
			Features: core.FeaturesFromText("breathable, quick-dry")},
		{ID: 3, Title: "Flex Running Shorts", Category: "shorts", Price: ptr(1299)},
	}

	t.Run("indexes every product once", func(t *testing.T) {
		catalogRepo := seedCatalog(t, products...)
		store := vsmock.NewMockStore()
		ix, err := NewIndexer(catalogRepo, store, mock.NewMockEmbedder(), WithBatchSize(2))
		require.NoError(t, err)
		defer ix.Release()

		n, err := ix.IndexAll(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), count)
		assert.Equal(t, 384, store.Dim())
	})

	t.Run("re-indexing overwrites not duplicates", func(t *testing.T) {
		catalogRepo := seedCatalog(t, products...)
		store := vsmock.NewMockStore()
		ix, err := NewIndexer(catalogRepo, store, mock.NewMockEmbedder())
		require.NoError(t, err)
		defer ix.Release()

		_, err = ix.IndexAll(ctx, false)
		require.NoError(t, err)
		_, err = ix.IndexAll(ctx, false)
		require.NoError(t, err)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), count)
	})

	t.Run("skipIfIndexed skips a populated collection", func(t *testing.T) {
		catalogRepo := seedCatalog(t, products...)
		store := vsmock.NewMockStore()
		embedder := mock.NewMockEmbedder()
		ix, err := NewIndexer(catalogRepo, store, embedder)
		require.NoError(t, err)
		defer ix.Release()

		_, err = ix.IndexAll(ctx, false)
		require.NoError(t, err)
		calls := embedder.CallCount()

		n, err := ix.IndexAll(ctx, true)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, calls, embedder.CallCount())
	})

	t.Run("empty catalog indexes nothing", func(t *testing.T) {
		catalogRepo := seedCatalog(t)
		store := vsmock.NewMockStore()
		ix, err := NewIndexer(catalogRepo, store, mock.NewMockEmbedder())
		require.NoError(t, err)
		defer ix.Release()

		n, err := ix.IndexAll(ctx, false)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("embedder failure propagates", func(t *testing.T) {
		catalogRepo := seedCatalog(t, products...)
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("rate limited")
		}
		ix, err := NewIndexer(catalogRepo, vsmock.NewMockStore(), embedder, WithMaxRetries(1))
		require.NoError(t, err)
		defer ix.Release()

		_, err = ix.IndexAll(ctx, false)
		assert.Error(t, err)
	})

	t.Run("short vector batch fails instead of upserting nils", func(t *testing.T) {
		catalogRepo := seedCatalog(t, products...)
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{0.1, 0.2}}, nil
		}
		store := vsmock.NewMockStore()
		ix, err := NewIndexer(catalogRepo, store, embedder,
			WithBatchSize(len(products)), WithMaxRetries(1))
		require.NoError(t, err)
		defer ix.Release()

		_, err = ix.IndexAll(ctx, false)
		require.ErrorIs(t, err, ErrVectorCountMismatch)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("transient embedder failures are retried", func(t *testing.T) {
		catalogRepo := seedCatalog(t, products...)
		fallback := mock.NewMockEmbedder()
		embedder := mock.NewMockEmbedder()
		var attempts int
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("rate limited")
			}
			return fallback.EmbedTexts(ctx, texts)
		}
		store := vsmock.NewMockStore()
		ix, err := NewIndexer(catalogRepo, store, embedder,
			WithBatchSize(len(products)), WithRetryDelay(time.Millisecond))
		require.NoError(t, err)
		defer ix.Release()

		indexed, err := ix.IndexAll(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, len(products), indexed)
		assert.Equal(t, 2, attempts)
	})
}

func TestProductText(t *testing.T) {
	t.Run("joins non-empty fields", func(t *testing.T) {
		got := ProductText(&core.Product{
			Title:       "Essential Oversized Hoodie",
			Category:    "hoodie",
			Description: "Heavyweight fleece.",
			Features:    core.FeaturesFromList([]string{"fleece"}),
		})
		assert.Equal(t, "Essential Oversized Hoodie\nhoodie\nHeavyweight fleece.\nfleece", got)
	})

	t.Run("drops empty fields", func(t *testing.T) {
		got := ProductText(&core.Product{Title: "Core Tee"})
		assert.Equal(t, "Core Tee", got)
	})
}
