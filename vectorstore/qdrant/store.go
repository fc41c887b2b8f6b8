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


package qdrant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hunnit/stylist/core"
	"github.com/hunnit/stylist/vectorstore"
	"github.com/qdrant/go-client/qdrant"
)

// Payload field names. product_id is the join key back to the catalog and
// the field the allow-list filter matches on.
const (
	fieldProductID   = "product_id"
	fieldTitle       = "title"
	fieldCategory    = "category"
	fieldPrice       = "price"
	fieldDescription = "description"
	fieldImageURL    = "image_url"
	fieldProductURL  = "product_url"
	fieldChunkText   = "chunk_text"
)

// Config holds connection settings for a Qdrant store.
type Config struct {
	// Host of the Qdrant gRPC endpoint. Default "localhost".
	Host string
	// Port of the Qdrant gRPC endpoint. Default 6334.
	Port int
	// APIKey authenticates against Qdrant Cloud. Empty for local instances.
	APIKey string
	// UseTLS enables TLS, required by Qdrant Cloud.
	UseTLS bool
	// Collection is the collection name. Default "products".
	Collection string
}

// Store implements vectorstore.Store over the Qdrant gRPC API.
type Store struct {
	client     *qdrant.Client
	collection string
	logger     *slog.Logger
}

// NewStore connects to Qdrant and returns the store.
//
// Returns vectorstore.Store interface to enforce abstraction.
func NewStore(config Config) (vectorstore.Store, error) {
	if config.Host == "" {
		config.Host = "localhost"
	}
	if config.Port == 0 {
		config.Port = 6334
	}
	if config.Collection == "" {
		config.Collection = "products"
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   config.Host,
		Port:   config.Port,
		APIKey: config.APIKey,
		UseTLS: config.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}

	return &Store{
		client:     client,
		collection: config.Collection,
		logger:     slog.Default().With("component", "qdrant-store", "collection", config.Collection),
	}, nil
}

// EnsureCollection creates the collection with the given vector width and
// cosine distance if absent. No-op when the collection already exists.
func (s *Store) EnsureCollection(ctx context.Context, dim int) error {
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("checking collection: %w", err)
	}
	if exists {
		return nil
	}

	s.logger.Info("creating collection", "dim", dim)
	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dim),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}
	return nil
}

// Count reports the exact number of stored points.
// A missing collection counts as zero so bootstrap checks can run before
// EnsureCollection.
func (s *Store) Count(ctx context.Context) (uint64, error) {
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return 0, fmt.Errorf("checking collection: %w", err)
	}
	if !exists {
		return 0, nil
	}

	count, err := s.client.Count(ctx, &qdrant.CountPoints{
		CollectionName: s.collection,
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, fmt.Errorf("counting points: %w", err)
	}
	return count, nil
}

// Upsert writes the points keyed by product ID.
func (s *Store) Upsert(ctx context.Context, points []vectorstore.Point) error {
	if len(points) == 0 {
		return nil
	}

	qpoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		payload := map[string]any{
			fieldProductID:   int64(p.ProductID),
			fieldTitle:       p.Title,
			fieldCategory:    p.Category,
			fieldDescription: p.Description,
			fieldImageURL:    p.ImageURL,
			fieldProductURL:  p.ProductURL,
			fieldChunkText:   p.ChunkText,
		}
		if p.Price != nil {
			payload[fieldPrice] = *p.Price
		} else {
			payload[fieldPrice] = nil
		}

		qpoints = append(qpoints, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(uint64(p.ProductID)),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(payload),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         qpoints,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("upserting %d points: %w", len(qpoints), err)
	}

	s.logger.Debug("upserted points", "count", len(qpoints))
	return nil
}

// Search runs nearest-neighbor search capped at limit, optionally
// restricted to allowedIDs via an exact-match predicate on product_id.
func (s *Store) Search(ctx context.Context, vector []float32, limit int, allowedIDs []core.ID) ([]core.CandidateChunk, error) {
	var filter *qdrant.Filter
	if len(allowedIDs) > 0 {
		ids := make([]int64, len(allowedIDs))
		for i, id := range allowedIDs {
			ids[i] = int64(id)
		}
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatchInts(fieldProductID, ids...),
			},
		}
	}

	hits, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		Filter:         filter,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("querying collection: %w", err)
	}

	chunks := make([]core.CandidateChunk, 0, len(hits))
	for _, hit := range hits {
		payload := hit.GetPayload()
		chunks = append(chunks, core.CandidateChunk{
			ProductID:   core.ID(payloadInt(payload, fieldProductID)),
			Score:       hit.GetScore(),
			Title:       payloadString(payload, fieldTitle),
			Category:    payloadString(payload, fieldCategory),
			Price:       payloadFloat(payload, fieldPrice),
			Description: payloadString(payload, fieldDescription),
			ImageURL:    payloadString(payload, fieldImageURL),
			ProductURL:  payloadString(payload, fieldProductURL),
			ChunkText:   payloadString(payload, fieldChunkText),
		})
	}

	s.logger.Debug("search finished", "hits", len(chunks), "limit", limit, "filtered", filter != nil)
	return chunks, nil
}

// Close closes the underlying gRPC connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	if v, ok := payload[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

func payloadInt(payload map[string]*qdrant.Value, key string) int64 {
	if v, ok := payload[key]; ok {
		return v.GetIntegerValue()
	}
	return 0
}

// payloadFloat returns nil for missing or null values so a product
// without a price stays unpriced instead of becoming free.
func payloadFloat(payload map[string]*qdrant.Value, key string) *float64 {
	v, ok := payload[key]
	if !ok {
		return nil
	}
	switch kind := v.GetKind().(type) {
	case *qdrant.Value_DoubleValue:
		return &kind.DoubleValue
	case *qdrant.Value_IntegerValue:
		f := float64(kind.IntegerValue)
		return &f
	default:
		return nil
	}
}
