package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProduct(t *testing.T) {
	price := 1499.0
	negative := -1.0

	t.Run("valid product", func(t *testing.T) {
		err := ValidateProduct(&Product{
			ID:       1,
			Title:    "Essential Oversized Hoodie",
			Category: "hoodie",
			Price:    &price,
		})
		assert.NoError(t, err)
	})

	t.Run("nil price is valid", func(t *testing.T) {
		err := ValidateProduct(&Product{ID: 2, Title: "Core Tee"})
		assert.NoError(t, err)
	})

	t.Run("nil product", func(t *testing.T) {
		err := ValidateProduct(nil)
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("empty title", func(t *testing.T) {
		err := ValidateProduct(&Product{ID: 3})
		assert.ErrorIs(t, err, ErrInvalidProduct)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("negative price", func(t *testing.T) {
		err := ValidateProduct(&Product{ID: 4, Title: "Tee", Price: &negative})
		assert.ErrorIs(t, err, ErrNegativePrice)
	})
}
