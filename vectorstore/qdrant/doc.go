// Package qdrant implements vectorstore.Store over the Qdrant gRPC API.
//
// Point IDs are the numeric product IDs, so re-indexing a product
// overwrites its previous point. The display payload travels with each
// point so search hits need no catalog round-trip.
package qdrant
