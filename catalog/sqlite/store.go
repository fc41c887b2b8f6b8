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


package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/hunnit/stylist/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY,
	title       TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	price       REAL,
	description TEXT NOT NULL DEFAULT '',
	features    TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL DEFAULT '',
	product_url TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`

const selectColumns = "id, title, category, price, description, features, image_url, product_url"

// Store is a SQLite-backed product catalog.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) a catalog database at the given path.
// WAL mode is enabled for concurrent readers.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.bootstrap(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewMemoryStore opens an in-memory catalog for testing.
func NewMemoryStore() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory catalog: %w", err)
	}
	// A fresh connection would see a fresh empty database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.bootstrap(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) bootstrap() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating catalog schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListAllProducts returns every product in the catalog ordered by ID.
func (s *Store) ListAllProducts(ctx context.Context) ([]*core.Product, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+selectColumns+" FROM products ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetByIDs retrieves products by their IDs, ordered by ID.
// Missing IDs are skipped without error.
func (s *Store) GetByIDs(ctx context.Context, ids ...core.ID) ([]*core.Product, error) {
	if len(ids) == 0 {
		return []*core.Product{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = int64(id)
	}

	query := "SELECT " + selectColumns + " FROM products WHERE id IN (" + placeholders + ") ORDER BY id"
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("getting products by ids: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// CountProducts returns the number of products in the catalog.
func (s *Store) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return count, nil
}

// AddProducts inserts or replaces products keyed by ID.
func (s *Store) AddProducts(ctx context.Context, products ...*core.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO products (`+selectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		if err := core.ValidateProduct(p); err != nil {
			return err
		}

		var price any
		if p.Price != nil {
			price = *p.Price
		}

		_, err := stmt.ExecContext(ctx,
			int64(p.ID), p.Title, p.Category, price,
			p.Description, encodeFeatures(p.Features), p.ImageURL, p.ProductURL)
		if err != nil {
			return fmt.Errorf("inserting product %d: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

func scanProducts(rows *sql.Rows) ([]*core.Product, error) {
	products := make([]*core.Product, 0)
	for rows.Next() {
		var (
			p        core.Product
			price    sql.NullFloat64
			features string
		)
		err := rows.Scan(&p.ID, &p.Title, &p.Category, &price,
			&p.Description, &features, &p.ImageURL, &p.ProductURL)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		if price.Valid {
			v := price.Float64
			p.Price = &v
		}
		p.Features = decodeFeatures(features)
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}
	return products, nil
}
