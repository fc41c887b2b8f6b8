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


package neo4j

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hunnit/stylist/core"
	"github.com/hunnit/stylist/graph"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Config holds connection settings for a Neo4j store.
type Config struct {
	// URI of the Neo4j endpoint, e.g. "neo4j://localhost:7687" or
	// "neo4j+s://<id>.databases.neo4j.io" for Aura.
	URI string
	// Username for basic auth. Default "neo4j".
	Username string
	// Password for basic auth.
	Password string
}

// Store implements graph.Store over the Neo4j Bolt protocol.
type Store struct {
	driver neo4j.DriverWithContext
	logger *slog.Logger
}

// NewStore connects to Neo4j and returns the store.
//
// Returns graph.Store interface to enforce abstraction.
func NewStore(config Config) (graph.Store, error) {
	if config.Username == "" {
		config.Username = "neo4j"
	}

	driver, err := neo4j.NewDriverWithContext(config.URI,
		neo4j.BasicAuth(config.Username, config.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("connecting to neo4j: %w", err)
	}

	return &Store{
		driver: driver,
		logger: slog.Default().With("component", "neo4j-store"),
	}, nil
}

// EnsureIndexes creates non-unique lookup indexes. Unique constraints are
// deliberately avoided: catalog data is messy enough that constraint
// violations would break sync, and MERGE already dedups for us.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	statements := []string{
		"CREATE INDEX product_id_index IF NOT EXISTS FOR (p:Product) ON (p.product_id)",
		"CREATE INDEX category_name_index IF NOT EXISTS FOR (c:Category) ON (c.name)",
		"CREATE INDEX feature_name_index IF NOT EXISTS FOR (f:Feature) ON (f.name)",
	}
	for _, stmt := range statements {
		if _, err := session.Run(ctx, stmt, nil); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}

// CountProducts returns the number of Product nodes.
func (s *Store) CountProducts(ctx context.Context) (int, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	count, err := neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) (int64, error) {
		result, err := tx.Run(ctx, "MATCH (p:Product) RETURN count(p) AS c", nil)
		if err != nil {
			return 0, err
		}
		record, err := result.Single(ctx)
		if err != nil {
			return 0, err
		}
		c, _ := record.Get("c")
		count, ok := c.(int64)
		if !ok {
			return 0, fmt.Errorf("unexpected count type %T", c)
		}
		return count, nil
	})
	if err != nil {
		return 0, fmt.Errorf("counting product nodes: %w", err)
	}
	return int(count), nil
}

// Wipe deletes all Product nodes plus any Category/Feature node left
// without edges. Scoped to this application's labels only.
func (s *Store) Wipe(ctx context.Context) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, "MATCH (p:Product) DETACH DELETE p", nil); err != nil {
			return nil, err
		}
		if _, err := tx.Run(ctx, "MATCH (c:Category) WHERE NOT (c)--() DELETE c", nil); err != nil {
			return nil, err
		}
		if _, err := tx.Run(ctx, "MATCH (f:Feature) WHERE NOT (f)--() DELETE f", nil); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("wiping knowledge graph: %w", err)
	}

	s.logger.Debug("knowledge graph wiped")
	return nil
}

// UpsertProduct merges the Product node, its Category node and edge, and
// its Feature nodes and edges.
func (s *Store) UpsertProduct(ctx context.Context, product *core.Product) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	var price any
	if product.Price != nil {
		price = *product.Price
	}

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, `
			MERGE (p:Product {product_id: $product_id})
			SET p.title = $title,
			    p.category = $category,
			    p.price = $price`,
			map[string]any{
				"product_id": int64(product.ID),
				"title":      product.Title,
				"category":   product.Category,
				"price":      price,
			})
		if err != nil {
			return nil, err
		}

		if product.Category != "" {
			_, err = tx.Run(ctx, `
				MERGE (c:Category {name: $category})
				MERGE (p:Product {product_id: $product_id})-[:BELONGS_TO]->(c)`,
				map[string]any{
					"product_id": int64(product.ID),
					"category":   product.Category,
				})
			if err != nil {
				return nil, err
			}
		}

		for _, feature := range product.Features.Labels() {
			_, err = tx.Run(ctx, `
				MERGE (f:Feature {name: $name})
				MERGE (p:Product {product_id: $product_id})-[:HAS_FEATURE]->(f)`,
				map[string]any{
					"name":       feature,
					"product_id": int64(product.ID),
				})
			if err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("upserting product %d: %w", product.ID, err)
	}
	return nil
}

// CandidateIDs returns the distinct product IDs matching the filter.
func (s *Store) CandidateIDs(ctx context.Context, filter graph.CandidateFilter) ([]core.ID, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	var category any
	if filter.CategoryHint != "" {
		category = strings.ToLower(filter.CategoryHint)
	}
	var maxPrice any
	if filter.MaxPrice != nil {
		maxPrice = *filter.MaxPrice
	}
	tags := make([]any, 0, len(filter.Tags))
	for _, tag := range filter.Tags {
		if tag != "" {
			tags = append(tags, strings.ToLower(tag))
		}
	}

	ids, err := neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) ([]core.ID, error) {
		result, err := tx.Run(ctx, `
			MATCH (p:Product)
			OPTIONAL MATCH (p)-[:BELONGS_TO]->(c:Category)
			OPTIONAL MATCH (p)-[:HAS_FEATURE]->(f:Feature)
			WITH p, c, f
			WHERE
			  (
			    $category IS NULL
			    OR toLower(p.category) CONTAINS $category
			    OR (c IS NOT NULL AND toLower(c.name) CONTAINS $category)
			  )
			  AND
			  (
			    $max_price IS NULL
			    OR p.price IS NULL
			    OR p.price <= $max_price
			  )
			  AND
			  (
			    size($tags) = 0 OR
			    any(t IN $tags WHERE
			        (f IS NOT NULL AND toLower(f.name) CONTAINS t) OR
			        toLower(p.title) CONTAINS t OR
			        toLower(coalesce(p.description, "")) CONTAINS t
			    )
			  )
			RETURN DISTINCT p.product_id AS id`,
			map[string]any{
				"category":  category,
				"max_price": maxPrice,
				"tags":      tags,
			})
		if err != nil {
			return nil, err
		}

		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}

		ids := make([]core.ID, 0, len(records))
		for _, record := range records {
			if v, ok := record.Get("id"); ok {
				if id, ok := v.(int64); ok {
					ids = append(ids, core.ID(id))
				}
			}
		}
		return ids, nil
	})
	if err != nil {
		return nil, fmt.Errorf("querying candidate ids: %w", err)
	}
	return ids, nil
}

// ContextFor returns the graph neighborhood of each requested product.
func (s *Store) ContextFor(ctx context.Context, ids []core.ID) ([]graph.ProductContext, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	params := make([]any, len(ids))
	for i, id := range ids {
		params[i] = int64(id)
	}

	contexts, err := neo4j.ExecuteRead(ctx, session, func(tx neo4j.ManagedTransaction) ([]graph.ProductContext, error) {
		result, err := tx.Run(ctx, `
			MATCH (p:Product)
			WHERE p.product_id IN $ids
			OPTIONAL MATCH (p)-[:BELONGS_TO]->(c:Category)
			OPTIONAL MATCH (p)-[:HAS_FEATURE]->(f:Feature)
			RETURN p.product_id AS id,
			       p.title AS title,
			       collect(DISTINCT c.name) AS categories,
			       collect(DISTINCT f.name) AS features`,
			map[string]any{"ids": params})
		if err != nil {
			return nil, err
		}

		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}

		contexts := make([]graph.ProductContext, 0, len(records))
		for _, record := range records {
			pc := graph.ProductContext{}
			if v, ok := record.Get("id"); ok {
				if id, ok := v.(int64); ok {
					pc.ProductID = core.ID(id)
				}
			}
			if v, ok := record.Get("title"); ok {
				if title, ok := v.(string); ok {
					pc.Title = title
				}
			}
			if v, ok := record.Get("categories"); ok {
				pc.Categories = stringList(v)
			}
			if v, ok := record.Get("features"); ok {
				pc.Features = stringList(v)
			}
			contexts = append(contexts, pc)
		}
		return contexts, nil
	})
	if err != nil {
		return nil, fmt.Errorf("querying product context: %w", err)
	}
	return contexts, nil
}

// Close shuts down the driver and its connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// stringList converts a Neo4j list value, dropping nulls that collect()
// produces for products without edges.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
