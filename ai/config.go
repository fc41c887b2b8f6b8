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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	EmbeddingHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "bge-m3", "text-embedding-3-small"
	EmbeddingModel string

	// EmbeddingToken authenticates against the embedding service.
	// "none" works for local services that skip authentication.
	EmbeddingToken string

	// PrimaryHost is the base URL for the primary generation provider.
	// Example: "https://api.groq.com/openai/v1"
	PrimaryHost string

	// PrimaryModel is the model identifier for the primary generator.
	// Example: "llama-3.1-8b-instant"
	PrimaryModel string

	// PrimaryToken authenticates against the primary generation provider.
	PrimaryToken string

	// FallbackHost is the base URL for the fallback generation provider.
	// Leave empty to run without a fallback.
	FallbackHost string

	// FallbackModel is the model identifier for the fallback generator.
	// Example: "gpt-4.1"
	FallbackModel string

	// FallbackToken authenticates against the fallback generation provider.
	FallbackToken string

	// Temperature is the sampling temperature used for every generation
	// call, primary and fallback alike. Kept low so the mention-bonus
	// rerank stays reproducible for a fixed context.
	// Default: 0.2
	Temperature float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithEmbeddingToken sets the embedding service API token.
func WithEmbeddingToken(token string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingToken = token
	}
}

// WithPrimary sets the primary generation provider endpoint.
func WithPrimary(host, model, token string) ConfigOption {
	return func(c *Config) {
		c.PrimaryHost = host
		c.PrimaryModel = model
		c.PrimaryToken = token
	}
}

// WithFallback sets the fallback generation provider endpoint.
func WithFallback(host, model, token string) ConfigOption {
	return func(c *Config) {
		c.FallbackHost = host
		c.FallbackModel = model
		c.FallbackToken = token
	}
}

// WithTemperature sets the sampling temperature for generation calls.
func WithTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services and the hosted generation providers.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingHost:  "http://localhost:11434/v1",
		EmbeddingModel: "bge-m3",
		EmbeddingToken: "none",
		PrimaryHost:    "https://api.groq.com/openai/v1",
		PrimaryModel:   "llama-3.1-8b-instant",
		FallbackHost:   "https://api.openai.com/v1",
		FallbackModel:  "gpt-4.1",
		Temperature:    0.2,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config with
// custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithEmbeddingHost("http://localhost:11434/v1"),
//	    ai.WithPrimary("https://api.groq.com/openai/v1", "llama-3.1-8b-instant", apiKey),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// Hosts get the /v1 suffix required by OpenAI-compatible APIs when it is
// missing, and an absent embedding token falls back to "none".
func (c *Config) Normalize() {
	c.EmbeddingHost = normalizeHost(c.EmbeddingHost)
	c.PrimaryHost = normalizeHost(c.PrimaryHost)
	c.FallbackHost = normalizeHost(c.FallbackHost)
	if c.EmbeddingToken == "" {
		c.EmbeddingToken = "none"
	}
}

func normalizeHost(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
// The fallback provider is optional, but when a fallback host is set its
// model must be set too.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.PrimaryHost == "" {
		return errors.New("ai config: PrimaryHost is required")
	}
	if c.PrimaryModel == "" {
		return errors.New("ai config: PrimaryModel is required")
	}
	if c.FallbackHost != "" && c.FallbackModel == "" {
		return errors.New("ai config: FallbackModel is required when FallbackHost is set")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("ai config: Temperature must be between 0 and 2")
	}
	return nil
}
