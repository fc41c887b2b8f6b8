// Package graph maintains the derived product knowledge graph and its
// two read paths: constraint-based candidate filtering and grounding
// context for generation.
//
// The graph holds Product, Category, and Feature nodes with BELONGS_TO
// and HAS_FEATURE edges. It is a pure derived view of the relational
// catalog, never the system of record, and is fully reconstructible from
// it. Category and Feature nodes dedup by name: identical names collapse
// to one node regardless of which product introduced them.
//
// Sync is all-or-nothing on any Product-node count mismatch, which is
// O(catalog size) per drift. Acceptable for a bounded catalog; revisit
// before the catalog grows past a few thousand rows.
package graph
