package domain

import (
	"fmt"
	"strings"
)

// MissingResponseError reports an incomplete response set. ItemID is the
// first unanswered item in catalog order. Recoverable: the caller prompts
// the user and re-invokes.
type MissingResponseError struct {
	ItemID string
}

func (e *MissingResponseError) Error() string {
	return fmt.Sprintf("no response for item %q", e.ItemID)
}

// InvalidResponseValueError reports a raw value outside the scale bounds.
// The collector's UI should have constrained the input, so this usually
// indicates a collector bug.
type InvalidResponseValueError struct {
	ItemID string
	Value  int
	Scale  Scale
}

func (e *InvalidResponseValueError) Error() string {
	return fmt.Sprintf("item %q: value %d outside scale %d..%d", e.ItemID, e.Value, e.Scale.Min, e.Scale.Max)
}

// CatalogError reports structural problems in the static instrument
// definition. This is a configuration bug and should fail fast, so all
// problems found are carried together.
type CatalogError struct {
	Problems []string
}

func (e *CatalogError) Error() string {
	return "invalid catalog: " + strings.Join(e.Problems, "; ")
}
