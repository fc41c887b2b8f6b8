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


// Package search runs the full retrieval-augmented query pipeline.
//
// A query flows through five stages, strictly sequential per request:
//   - Intent detection and enrichment via the category lexicon
//   - Vector retrieval of candidate chunks from the similarity store
//   - Per-product aggregation plus knowledge-graph context fetch
//   - Answer synthesis grounded in the combined context
//   - Mention-bonus rerank of the candidates against the generated answer
//
// The rerank pass is a deliberate heuristic: pure vector similarity may
// rank a product highly that the generated answer never recommends. The
// mention bonus forces the visible result order to agree with the
// natural-language recommendation at the cost of being a string match
// rather than a semantic one.
package search
