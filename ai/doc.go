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


// Package ai provides abstractions for the AI services used by Stylist.
//
// This package defines interfaces for text embeddings and answer
// generation. The search pipeline depends only on these abstractions, so
// providers can be swapped and business logic can be tested without
// external services.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Embedder: generates vector embeddings from text
//   - Generator: produces free-text completions from a prompt
//   - Provider: aggregates an embedder plus primary/fallback generators
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//     (Groq and OpenAI included; both speak the same wire protocol)
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors in ai/openai return interface types to enforce
// abstraction; mock constructors return concrete types so tests can
// inject behavior via the XFunc fields and assert on call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(
//	    ai.WithPrimary("https://api.groq.com/openai/v1", "llama-3.1-8b-instant", groqKey),
//	    ai.WithFallback("https://api.openai.com/v1", "gpt-4.1", openaiKey),
//	)
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vec, err := provider.Embedder().EmbedText(ctx, "oversized gym hoodie")
//	text, err := provider.Primary().Complete(ctx, prompt, cfg.Temperature)
package ai
