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


package openai

import (
	"log/slog"

	"github.com/hunnit/stylist/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// It manages the embedder and the primary/fallback generator instances.
type Provider struct {
	config   *ai.Config
	embedder *Embedder
	primary  *Generator
	fallback *Generator
	logger   *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use. The fallback
// generator is only created when a fallback host is configured.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	primary, err := newGenerator(config.PrimaryHost, config.PrimaryModel, config.PrimaryToken)
	if err != nil {
		return nil, err
	}

	var fallback *Generator
	if config.FallbackHost != "" {
		fallback, err = newGenerator(config.FallbackHost, config.FallbackModel, config.FallbackToken)
		if err != nil {
			return nil, err
		}
	}

	return &Provider{
		config:   config,
		embedder: embedder,
		primary:  primary,
		fallback: fallback,
		logger:   slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Primary returns the primary generation service.
func (p *Provider) Primary() ai.Generator {
	return p.primary
}

// Fallback returns the fallback generation service, or nil when none is
// configured.
func (p *Provider) Fallback() ai.Generator {
	if p.fallback == nil {
		return nil
	}
	return p.fallback
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
