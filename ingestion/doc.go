// Package ingestion builds the vector index from the product catalog.
//
// The Indexer embeds one vector per product (concatenated title,
// category, description, and feature text) and upserts points keyed by
// product ID. Embedding batches run concurrently on a worker pool;
// upserts are idempotent, so a crashed run can simply be re-run.
package ingestion
