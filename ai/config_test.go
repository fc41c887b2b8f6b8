package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "bge-m3", cfg.EmbeddingModel)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.PrimaryModel)
	assert.Equal(t, "gpt-4.1", cfg.FallbackModel)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithEmbeddingHost("http://embed:9100"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithEmbeddingToken("tok"),
		WithPrimary("https://api.groq.com/openai", "llama-3.1-8b-instant", "groq-key"),
		WithFallback("https://api.openai.com", "gpt-4.1", "openai-key"),
		WithTemperature(0.0),
	)

	assert.Equal(t, "http://embed:9100", cfg.EmbeddingHost)
	assert.Equal(t, "groq-key", cfg.PrimaryToken)
	assert.Equal(t, "openai-key", cfg.FallbackToken)
	assert.Zero(t, cfg.Temperature)
}

func TestConfig_Normalize(t *testing.T) {
	t.Run("adds /v1 suffix", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://localhost:11434"),
			WithPrimary("https://api.groq.com/openai", "m", ""),
		)
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "https://api.groq.com/openai/v1", cfg.PrimaryHost)
	})

	t.Run("strips trailing slash before adding suffix", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434/"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("leaves /v1 hosts alone", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434/v1"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("empty embedding token defaults to none", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EmbeddingToken = ""
		cfg.Normalize()
		assert.Equal(t, "none", cfg.EmbeddingToken)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return NewConfig(
			WithPrimary("https://api.groq.com/openai/v1", "llama-3.1-8b-instant", "k"),
		)
	}

	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("fallback is optional", func(t *testing.T) {
		cfg := valid()
		cfg.FallbackHost = ""
		cfg.FallbackModel = ""
		assert.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing primary host", func(c *Config) { c.PrimaryHost = "" }},
		{"missing primary model", func(c *Config) { c.PrimaryModel = "" }},
		{"fallback host without model", func(c *Config) { c.FallbackModel = "" }},
		{"temperature out of range", func(c *Config) { c.Temperature = 2.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
