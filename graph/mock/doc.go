// Package mock provides an in-memory graph.Store for tests.
package mock
