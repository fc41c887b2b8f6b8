// Package openai implements the ai interfaces against OpenAI-compatible
// HTTP APIs via langchaingo. Groq, OpenAI, Ollama, and vLLM all speak
// this protocol, so the same client serves the embedding endpoint, the
// primary generator, and the fallback generator. Only base URL, model,
// and token differ.
package openai
