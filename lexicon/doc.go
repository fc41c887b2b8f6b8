// Package lexicon holds the static category intent lexicon and the query
// enrichment step built on it.
//
// Detection is a deliberately simple substring match: the catalog is
// small and its categories are distinctive enough that anything heavier
// has not been worth it. Enrichment biases the embedded query toward the
// intended product family by appending the category's full synonym set.
package lexicon
