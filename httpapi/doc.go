// Package httpapi is the thin HTTP surface over the search pipeline.
//
// It exposes the search endpoint under /api/v1 in both GET (query
// parameter) and POST (JSON body) forms, plus a health probe. The layer
// holds no state of its own: every request is delegated to a Searcher
// and pipeline failures surface as a generic 500 so provider details
// never leak to clients.
package httpapi
