// Package mock provides an in-memory vectorstore.Store for tests.
package mock
