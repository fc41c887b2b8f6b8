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


package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hunnit/stylist/search"
)

// Server wires the search pipeline into HTTP handlers.
type Server struct {
	searcher *search.Searcher
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewServer creates the HTTP layer over a searcher.
func NewServer(searcher *search.Searcher, opts ...Option) (*Server, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	s := &Server{
		searcher: searcher,
		logger:   slog.Default().With("component", "httpapi"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Router builds the API routes with request-ID, panic-recovery, and
// CORS middleware applied.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/search", s.handleSearchGet)
		r.Post("/search", s.handleSearchPost)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearchGet(w http.ResponseWriter, r *http.Request) {
	s.runSearch(w, r, r.URL.Query().Get("query"))
}

// searchRequest is the POST body of /api/v1/search.
type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSearchPost(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	s.runSearch(w, r, req.Query)
}

// runSearch is the shared handler body: GET and POST must produce
// identical responses for identical query text.
func (s *Server) runSearch(w http.ResponseWriter, r *http.Request, query string) {
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query must not be empty")
		return
	}

	logger := s.logger.With("requestID", RequestIDFromContext(r.Context()))
	logger.Info("search request", "query", query)

	resp, err := s.searcher.RunSearch(r.Context(), query)
	if err != nil {
		logger.Error("search pipeline failed", "query", query, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("error encoding response body", "err", err)
	}
}

// writeError mirrors the {"detail": ...} error envelope the storefront
// frontend expects.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
