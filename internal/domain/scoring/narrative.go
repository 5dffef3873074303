package scoring

import (
	"strings"

	"github.com/ccwkit/ccwkit/internal/domain"
)

// NormalizeNarrative joins text fragments into one paragraph: each part is
// trimmed, internal whitespace runs collapse to single spaces, empty parts
// are dropped, and the remainder is joined with single spaces.
func NormalizeNarrative(parts []string) string {
	var words []string
	for _, p := range parts {
		words = append(words, strings.Fields(p)...)
	}
	return strings.Join(words, " ")
}

// Narrative composes one paragraph from the descriptions of the given
// dimensions, in the order given (normally rank order). Dimensions without
// a description contribute nothing.
func Narrative(cat *domain.Catalog, dimensionIDs []string) string {
	parts := make([]string, 0, len(dimensionIDs))
	for _, id := range dimensionIDs {
		if d, ok := cat.Dimension(id); ok {
			parts = append(parts, d.Description)
		}
	}
	return NormalizeNarrative(parts)
}
