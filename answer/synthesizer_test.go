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


package answer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunnit/stylist/ai/mock"
	"github.com/hunnit/stylist/answer"
)

func TestNewSynthesizer(t *testing.T) {
	t.Run("requires primary generator", func(t *testing.T) {
		_, err := answer.NewSynthesizer(nil, mock.NewMockGenerator("x"))
		require.ErrorIs(t, err, answer.ErrPrimaryGeneratorRequired)
	})

	t.Run("fallback is optional", func(t *testing.T) {
		s, err := answer.NewSynthesizer(mock.NewMockGenerator("x"), nil)
		require.NoError(t, err)
		require.NotNil(t, s)
	})
}

func TestSynthesizer_Answer(t *testing.T) {
	ctx := context.Background()
	chunks := []string{"Product: Flex Hoodie", "Product: Core Tee"}

	t.Run("primary success skips fallback", func(t *testing.T) {
		primary := mock.NewMockGenerator("go with the hoodie")
		fallback := mock.NewMockGenerator("fallback answer")

		s, err := answer.NewSynthesizer(primary, fallback)
		require.NoError(t, err)

		text, err := s.Answer(ctx, "something warm", chunks)
		require.NoError(t, err)
		assert.Equal(t, "go with the hoodie", text)
		assert.Equal(t, 1, primary.CallCount())
		assert.Equal(t, 0, fallback.CallCount())
	})

	t.Run("prompt carries instruction, chunks, and query", func(t *testing.T) {
		primary := mock.NewMockGenerator("ok")

		s, err := answer.NewSynthesizer(primary, nil)
		require.NoError(t, err)

		_, err = s.Answer(ctx, "something warm", chunks)
		require.NoError(t, err)

		prompt := primary.LastPrompt()
		assert.Contains(t, prompt, "AI fashion stylist")
		assert.Contains(t, prompt, "Product: Flex Hoodie")
		assert.Contains(t, prompt, "Product: Core Tee")
		assert.Contains(t, prompt, "\n\n---\n\n")
		assert.Contains(t, prompt, "User query: something warm")
	})

	t.Run("fallback gets identical prompt and temperature", func(t *testing.T) {
		primary := mock.NewMockGenerator("")
		primary.Err = errors.New("rate limited")
		fallback := mock.NewMockGenerator("fallback answer")

		s, err := answer.NewSynthesizer(primary, fallback, answer.WithTemperature(0.7))
		require.NoError(t, err)

		text, err := s.Answer(ctx, "something warm", chunks)
		require.NoError(t, err)
		assert.Equal(t, "fallback answer", text)
		assert.Equal(t, 1, primary.CallCount())
		assert.Equal(t, 1, fallback.CallCount())
		assert.Equal(t, primary.LastPrompt(), fallback.LastPrompt())
		assert.Equal(t, 0.7, primary.LastTemperature())
		assert.Equal(t, 0.7, fallback.LastTemperature())
	})

	t.Run("both providers failing wraps ErrSynthesisFailed", func(t *testing.T) {
		primary := mock.NewMockGenerator("")
		primary.Err = errors.New("rate limited")
		fallback := mock.NewMockGenerator("")
		fallback.Err = errors.New("quota exceeded")

		s, err := answer.NewSynthesizer(primary, fallback)
		require.NoError(t, err)

		_, err = s.Answer(ctx, "something warm", chunks)
		require.ErrorIs(t, err, answer.ErrSynthesisFailed)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("nil fallback propagates primary failure", func(t *testing.T) {
		primary := mock.NewMockGenerator("")
		primary.Err = errors.New("rate limited")

		s, err := answer.NewSynthesizer(primary, nil)
		require.NoError(t, err)

		_, err = s.Answer(ctx, "something warm", chunks)
		require.ErrorIs(t, err, answer.ErrSynthesisFailed)
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("default temperature is 0.2", func(t *testing.T) {
		primary := mock.NewMockGenerator("ok")

		s, err := answer.NewSynthesizer(primary, nil)
		require.NoError(t, err)

		_, err = s.Answer(ctx, "q", chunks)
		require.NoError(t, err)
		assert.Equal(t, 0.2, primary.LastTemperature())
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := answer.BuildPrompt("warm layers", []string{"a", "b", "c"})
	assert.Equal(t, 2, strings.Count(prompt, "\n\n---\n\n"))
	assert.True(t, strings.HasSuffix(prompt, "Now give a short, friendly recommendation:"))
}
