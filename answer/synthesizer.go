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


package answer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hunnit/stylist/ai"
)

// Synthesizer grounds a generation call in retrieved context chunks.
// Any primary-provider failure triggers exactly one fallback attempt with
// an identical prompt and temperature; a fallback failure propagates.
type Synthesizer struct {
	primary     ai.Generator
	fallback    ai.Generator
	temperature float64
	logger      *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithTemperature sets the sampling temperature for both providers.
// Default is 0.2, low enough to keep reranking reproducible for a fixed
// context.
func WithTemperature(temperature float64) Option {
	return func(s *Synthesizer) {
		s.temperature = temperature
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewSynthesizer creates a synthesizer with a primary and an optional
// fallback generator. A nil fallback means primary failures propagate
// immediately.
func NewSynthesizer(primary, fallback ai.Generator, opts ...Option) (*Synthesizer, error) {
	if primary == nil {
		return nil, ErrPrimaryGeneratorRequired
	}

	s := &Synthesizer{
		primary:     primary,
		fallback:    fallback,
		temperature: 0.2,
		logger:      slog.Default().With("component", "synthesizer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Answer builds the grounding prompt and generates the recommendation
// text. The primary provider is tried first; on any failure the fallback
// gets one attempt with the identical prompt. No retry beyond that.
func (s *Synthesizer) Answer(ctx context.Context, query string, chunks []string) (string, error) {
	prompt := BuildPrompt(query, chunks)

	text, err := s.primary.Complete(ctx, prompt, s.temperature)
	if err == nil {
		return text, nil
	}
	s.logger.Warn("primary generation provider failed, trying fallback", "err", err)

	if s.fallback == nil {
		return "", fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
	}

	text, fallbackErr := s.fallback.Complete(ctx, prompt, s.temperature)
	if fallbackErr != nil {
		s.logger.Error("fallback generation provider failed", "err", fallbackErr)
		return "", fmt.Errorf("%w: %w", ErrSynthesisFailed, fallbackErr)
	}
	return text, nil
}
