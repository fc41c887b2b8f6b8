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
	"context"
	"log/slog"
	"strings"

	"github.com/hunnit/stylist/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Generator implements ai.Generator using OpenAI-compatible chat APIs.
// Groq exposes the same wire protocol, so a single implementation covers
// both the primary and the fallback provider.
type Generator struct {
	client llms.Model
	model  string
	logger *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instances.
func newGenerator(host, model, token string) (*Generator, error) {
	if token == "" {
		// Local OpenAI-compatible services accept any token.
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(host),
		openai.WithToken(token),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client: client,
		model:  model,
		logger: slog.Default().With("component", "openai-generator", "model", model),
	}, nil
}

// NewGenerator creates a generator for an OpenAI-compatible chat endpoint.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(host, model, token string) (ai.Generator, error) {
	return newGenerator(host, model, token)
}

// Complete sends the prompt as a single user message and returns the
// model's text response.
func (g *Generator) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	g.logger.Debug("generating completion", "promptLength", len(prompt), "temperature", temperature)

	response, err := llms.GenerateFromSinglePrompt(ctx, g.client, prompt,
		llms.WithTemperature(temperature))
	if err != nil {
		g.logger.Error("failed to generate completion", "err", err)
		return "", err
	}

	return strings.TrimSpace(response), nil
}
