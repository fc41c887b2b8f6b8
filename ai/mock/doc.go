// Package mock provides test doubles for the ai interfaces.
//
// The mocks default to deterministic behavior (hash-derived embedding
// vectors, canned generator responses) and expose XFunc fields for
// injecting failures or custom responses, plus call counters for
// assertions.
package mock
