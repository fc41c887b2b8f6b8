package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntentCategory(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"direct hoodie mention", "hoodies under 2000", "hoodie"},
		{"hoodie phrase", "show me a hooded sweatshirt", "hoodie"},
		{"case insensitive", "Best OVERSIZED HOODIE for winter", "hoodie"},
		{"tshirt synonym", "need a crew neck for the gym", "tshirt"},
		{"shorts synonym", "biker shorts in black", "shorts"},
		{"no match", "something warm for the winter", ""},
		{"empty query", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntentCategory(tt.query))
		})
	}
}

func TestDetectIntentCategory_FirstMatchWins(t *testing.T) {
	// "hoodie" precedes "tshirt" in lexicon order, so a query mentioning
	// both resolves to hoodie deterministically.
	got := DetectIntentCategory("hoodie or tee, whatever looks good")
	assert.Equal(t, "hoodie", got)
}

func TestEnrich(t *testing.T) {
	t.Run("appends synonyms for detected category", func(t *testing.T) {
		enriched := Enrich("hoodies under 2000", "hoodie")
		assert.Contains(t, enriched, "hoodies under 2000")
		for _, syn := range Synonyms("hoodie") {
			assert.Contains(t, enriched, syn)
		}
	})

	t.Run("original query stays a verbatim prefix", func(t *testing.T) {
		enriched := Enrich("gym top", "tshirt")
		assert.True(t, len(enriched) > len("gym top"))
		assert.Equal(t, "gym top", enriched[:len("gym top")])
	})

	t.Run("unchanged when category empty", func(t *testing.T) {
		assert.Equal(t, "red socks", Enrich("red socks", ""))
	})

	t.Run("unchanged when category unknown", func(t *testing.T) {
		assert.Equal(t, "red socks", Enrich("red socks", "socks"))
	})
}

func TestEnrich_Purity(t *testing.T) {
	// No lexicon synonym appears in the query, so detect+enrich is the
	// identity and repeated application is deterministic.
	query := "warm winter gear"
	for i := 0; i < 3; i++ {
		assert.Equal(t, query, Enrich(query, DetectIntentCategory(query)))
	}
}
