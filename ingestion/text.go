package ingestion

import (
	"strings"

	"github.com/hunnit/stylist/core"
)

// ProductText concatenates a product's searchable fields into the single
// text string that gets embedded: title, category, description, and the
// normalized feature labels, newline-joined with empty parts dropped.
func ProductText(product *core.Product) string {
	parts := []string{
		product.Title,
		product.Category,
		product.Description,
		product.Features.Text(),
	}

	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, "\n")
}
