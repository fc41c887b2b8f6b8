// Package neo4j implements graph.Store over the Neo4j Bolt protocol.
//
// All writes go through MERGE so sync re-application is idempotent and
// Category/Feature nodes dedup by name.
package neo4j
