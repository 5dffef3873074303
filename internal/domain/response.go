package domain

// Responses maps item IDs to raw scale values. Identity is always the item
// ID, never a display position: collectors are free to shuffle the order
// items are shown in without affecting scoring.
type Responses map[string]int

// Completeness is the result of checking a response set against a catalog.
type Completeness struct {
	Complete     bool   `json:"complete"`
	FirstMissing string `json:"first_missing,omitempty"`
}

// CheckCompleteness reports whether every catalog item has a response.
// The first missing item is identified in catalog declaration order so the
// collector can direct the user's attention to a stable place.
func CheckCompleteness(c *Catalog, r Responses) Completeness {
	for _, it := range c.Items {
		if _, ok := r[it.ID]; !ok {
			return Completeness{FirstMissing: it.ID}
		}
	}
	return Completeness{Complete: true}
}
