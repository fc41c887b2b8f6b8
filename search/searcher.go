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


package search

import (
	"context"
	"log/slog"

	"github.com/hunnit/stylist/ai"
	"github.com/hunnit/stylist/answer"
	"github.com/hunnit/stylist/core"
	"github.com/hunnit/stylist/graph"
	"github.com/hunnit/stylist/lexicon"
	"github.com/hunnit/stylist/vectorstore"
)

// NoResultsAnswer is returned verbatim when retrieval produces no usable
// candidates. The generator is never called in that case.
const NoResultsAnswer = "I couldn't find any relevant products."

const (
	defaultRetrievalLimit = 10
	defaultTopN           = 6
)

// Searcher runs the retrieval-augmented product search pipeline.
type Searcher struct {
	embedder    ai.Embedder
	store       vectorstore.Store
	graph       *graph.Graph
	synthesizer *answer.Synthesizer
	weights     Weights
	limit       int
	topN        int
	logger      *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithWeights overrides the mention-bonus weights.
// Default is DefaultWeights().
func WithWeights(weights Weights) Option {
	return func(s *Searcher) {
		s.weights = weights
	}
}

// WithRetrievalLimit sets how many candidate chunks the vector store is
// asked for before aggregation. Default is 10.
func WithRetrievalLimit(limit int) Option {
	return func(s *Searcher) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithTopN caps the reranked result list. Default is 6.
func WithTopN(topN int) Option {
	return func(s *Searcher) {
		if topN > 0 {
			s.topN = topN
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewSearcher creates a new searcher. The graph may be nil, in which
// case knowledge-graph context is skipped and the pipeline runs on
// vector retrieval plus generation alone.
func NewSearcher(
	embedder ai.Embedder,
	store vectorstore.Store,
	g *graph.Graph,
	synthesizer *answer.Synthesizer,
	opts ...Option,
) (*Searcher, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if store == nil {
		return nil, ErrVectorStoreRequired
	}
	if synthesizer == nil {
		return nil, ErrSynthesizerRequired
	}
	if g == nil {
		g = graph.New(nil)
	}

	s := &Searcher{
		embedder:    embedder,
		store:       store,
		graph:       g,
		synthesizer: synthesizer,
		weights:     DefaultWeights(),
		limit:       defaultRetrievalLimit,
		topN:        defaultTopN,
		logger:      slog.Default().With("component", "searcher"),
	}

	// Apply options
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// RunSearch answers a natural-language product query.
// Returns the generated answer and up to topN reranked results.
func (s *Searcher) RunSearch(ctx context.Context, query string) (*core.SearchResponse, error) {
	return s.RunSearchWithMonitor(ctx, query, nil)
}

// RunSearchWithMonitor answers a query with stage monitoring.
// The monitor receives callbacks at each stage of the pipeline.
func (s *Searcher) RunSearchWithMonitor(ctx context.Context, query string, monitor Monitor) (*core.SearchResponse, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// 1. Detect intent and enrich the query with category synonyms
	category := lexicon.DetectIntentCategory(query)
	enriched := lexicon.Enrich(query, category)
	monitor.AfterEnrichment(category, enriched)

	// 2. Retrieve candidate chunks for the enriched query
	embedding, err := s.embedder.EmbedText(ctx, enriched)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	chunks, err := s.store.Search(ctx, embedding, s.limit, nil)
	if err != nil {
		s.logger.Error("error querying vector store", "err", err)
		return nil, err
	}
	monitor.AfterRetrieval(chunks)

	// 3. Collapse to one base record per product
	base, grounding := Aggregate(chunks)
	if len(base) == 0 {
		s.logger.Info("no candidates retrieved", "query", query)
		resp := &core.SearchResponse{
			Answer:  NoResultsAnswer,
			Results: []core.RankedResult{},
		}
		monitor.Finish(resp.Results)
		return resp, nil
	}

	ids := make([]core.ID, 0, len(base))
	for _, chunk := range base {
		ids = append(ids, chunk.ProductID)
	}
	monitor.AfterAggregation(ids)

	// 4. Knowledge-graph context steers what the model says,
	// never the base similarity score
	blocks := s.graph.ContextBlocks(ctx, ids)
	monitor.AfterGraphContext(blocks)
	grounding = append(grounding, blocks...)

	// 5. Synthesize the answer from the combined grounding context
	answerText, err := s.synthesizer.Answer(ctx, query, grounding)
	if err != nil {
		s.logger.Error("error synthesizing answer", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterSynthesis(answerText)

	// 6. Rerank so the card order agrees with the recommendation
	results := Rerank(base, answerText, s.weights, s.topN)
	monitor.Finish(results)

	return &core.SearchResponse{
		Answer:  answerText,
		Results: results,
	}, nil
}
