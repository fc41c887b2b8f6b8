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


package mock

import "github.com/hunnit/stylist/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock embedder and generator instances.
type MockProvider struct {
	embedder *MockEmbedder
	primary  *MockGenerator
	fallback *MockGenerator
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production
// constructors. Use GetMockEmbedder()/GetMockPrimary()/GetMockFallback()
// to access concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		embedder: NewMockEmbedder(),
		primary:  NewMockGenerator("mock answer"),
		fallback: NewMockGenerator("mock fallback answer"),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// A nil fallback models a provider configured without one.
func NewMockProviderWithServices(embedder *MockEmbedder, primary, fallback *MockGenerator) ai.Provider {
	return &MockProvider{
		embedder: embedder,
		primary:  primary,
		fallback: fallback,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Primary returns the mock primary generator.
func (p *MockProvider) Primary() ai.Generator {
	return p.primary
}

// Fallback returns the mock fallback generator, or nil when unset.
func (p *MockProvider) Fallback() ai.Generator {
	if p.fallback == nil {
		return nil
	}
	return p.fallback
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the concrete mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockPrimary returns the concrete primary mock generator for test assertions.
func (p *MockProvider) GetMockPrimary() *MockGenerator {
	return p.primary
}

// GetMockFallback returns the concrete fallback mock generator for test assertions.
func (p *MockProvider) GetMockFallback() *MockGenerator {
	return p.fallback
}
