package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use and deterministic
// for identical input text.
type Embedder interface {
	// EmbedText generates a normalized vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces free-text completions from a prompt.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Complete sends the prompt to the model and returns the generated text.
	// Temperature controls sampling randomness; the pipeline uses a low
	// value so reranking stays reproducible for a fixed context.
	// Fails with a provider error on quota, network, or malformed-response
	// conditions.
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Provider aggregates the AI services for convenient initialization and
// lifecycle management. It owns the embedder plus a primary and a fallback
// generator that share configuration.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Primary returns the generator tried first for every synthesis call.
	Primary() Generator

	// Fallback returns the generator used after a primary failure.
	// May return nil when no fallback is configured.
	Fallback() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
