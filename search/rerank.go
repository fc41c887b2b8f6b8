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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hunnit/stylist/core"
)

// minTokenLength is the shortest title token that counts toward the
// partial-mention bonus. Shorter tokens ("pro", "2xl") match too much
// incidental answer text to be a useful signal.
const minTokenLength = 4

// Weights controls the mention-bonus scoring of the rerank pass.
type Weights struct {
	// FullTitle is awarded when the whole lower-cased title appears in
	// the answer. A full match short-circuits per-token scoring.
	FullTitle float32

	// TitleToken is awarded once per title token of length >= 4 found in
	// the answer. Additive and unbounded across tokens.
	TitleToken float32

	// Category is awarded when the category name appears in the answer,
	// independently of the title checks.
	Category float32
}

// DefaultWeights returns the production mention-bonus weights.
func DefaultWeights() Weights {
	return Weights{
		FullTitle:  0.7,
		TitleToken: 0.15,
		Category:   0.1,
	}
}

// GroundingText formats one candidate chunk into the context block the
// generator sees. ChunkText is the embedded search text and only one
// line of it: the block carries the payload fields the answer has to
// honor, price included, so constraints like "under 2000" can be
// answered from context. A missing price is marked N/A rather than
// omitted so the model does not invent one.
func GroundingText(chunk core.CandidateChunk) string {
	price := "N/A"
	if chunk.Price != nil {
		price = strconv.FormatFloat(*chunk.Price, 'f', -1, 64)
	}
	return fmt.Sprintf("Title: %s\nCategory: %s\nPrice: %s\nDescription: %s\nSnippet: %s",
		chunk.Title, chunk.Category, price, chunk.Description, chunk.ChunkText)
}

// Aggregate collapses candidate chunks into one base record per product,
// keeping the max-scoring chunk as that product's record. Chunks with no
// product identifier are dropped. The second return value collects the
// grounding block of every surviving chunk, in input order: dedup only
// affects the ranked cards, never what the generator sees.
//
// Base records are ordered by descending score; products with equal
// scores keep their first-seen input order.
func Aggregate(chunks []core.CandidateChunk) ([]core.CandidateChunk, []string) {
	best := make(map[core.ID]int, len(chunks))
	base := make([]core.CandidateChunk, 0, len(chunks))
	grounding := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		if chunk.ProductID <= 0 {
			continue
		}
		grounding = append(grounding, GroundingText(chunk))
		if idx, seen := best[chunk.ProductID]; seen {
			if chunk.Score > base[idx].Score {
				base[idx] = chunk
			}
			continue
		}
		best[chunk.ProductID] = len(base)
		base = append(base, chunk)
	}

	sort.SliceStable(base, func(i, j int) bool {
		return base[i].Score > base[j].Score
	})

	return base, grounding
}

// MentionBonus scores how strongly the generated answer mentions a
// product. The answer, title, and category are compared lower-cased.
//
// A full-title substring match awards FullTitle and skips per-token
// scoring. Otherwise each whitespace-split token of the
// hyphen-normalized title with length >= 4 that appears in the answer
// awards TitleToken. A category substring match awards Category on top
// of either outcome.
func (w Weights) MentionBonus(answer, title, category string) float32 {
	answer = strings.ToLower(answer)

	var bonus float32
	if t := strings.ToLower(strings.TrimSpace(title)); t != "" {
		if strings.Contains(answer, t) {
			bonus += w.FullTitle
		} else {
			normalized := strings.ReplaceAll(t, "-", " ")
			for _, token := range strings.Fields(normalized) {
				if len(token) >= minTokenLength && strings.Contains(answer, token) {
					bonus += w.TitleToken
				}
			}
		}
	}
	if c := strings.ToLower(strings.TrimSpace(category)); c != "" && strings.Contains(answer, c) {
		bonus += w.Category
	}
	return bonus
}

// Rerank computes composite scores (base similarity + mention bonus
// against the answer), re-sorts descending, and truncates to topN.
// topN <= 0 disables the cap.
func Rerank(base []core.CandidateChunk, answer string, weights Weights, topN int) []core.RankedResult {
	results := make([]core.RankedResult, 0, len(base))
	for _, chunk := range base {
		results = append(results, core.RankedResult{
			ID:          chunk.ProductID,
			Title:       chunk.Title,
			Category:    chunk.Category,
			Price:       chunk.Price,
			Description: chunk.Description,
			ImageURL:    chunk.ImageURL,
			ProductURL:  chunk.ProductURL,
			Score:       chunk.Score + weights.MentionBonus(answer, chunk.Title, chunk.Category),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}
