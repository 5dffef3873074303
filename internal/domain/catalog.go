package domain

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
)

// Scale defines the closed integer interval a raw response may take,
// e.g. 1..6 for a six-point agreement scale.
type Scale struct {
	Min    int      `yaml:"min"              json:"min"`
	Max    int      `yaml:"max"              json:"max"`
	Labels []string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// Contains reports whether v is a valid raw response on this scale.
func (s Scale) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Size returns the number of points on the scale.
func (s Scale) Size() int {
	return s.Max - s.Min + 1
}

// Reverse maps a raw value to its reverse-scored value, so that the
// lowest point swaps with the highest. For a 1..6 scale: 1↔6, 2↔5, 3↔4.
func (s Scale) Reverse(v int) int {
	return s.Min + s.Max - v
}

// Dimension is one scored construct of the instrument. ID is the stable
// identity used for scoring, ranking and profile lookup; Label is the
// human-readable name used for display and tie-breaking.
type Dimension struct {
	ID          string `yaml:"id"                    json:"id"`
	Label       string `yaml:"label,omitempty"       json:"label,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// DisplayLabel returns the explicit label, or one derived from the ID.
func (d Dimension) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return PrettyLabel(d.ID)
}

// PrettyLabel derives a display label from an identifier: underscores and
// hyphens become spaces, camelCase is split into words, words are title-cased.
func PrettyLabel(id string) string {
	normalized := strings.NewReplacer("_", " ", "-", " ").Replace(id)

	var words []string
	for _, field := range strings.Fields(normalized) {
		words = append(words, camelcase.Split(field)...)
	}

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// Item is one survey statement. It belongs to exactly one dimension and
// may be reverse-scored for negatively phrased statements.
type Item struct {
	ID        string `yaml:"id"                json:"id"`
	Dimension string `yaml:"dimension"         json:"dimension"`
	Text      string `yaml:"text"              json:"text"`
	Reverse   bool   `yaml:"reverse,omitempty" json:"reverse,omitempty"`
}

// Selection holds the variant parameters of the selection stage. Historic
// versions of the instrument differ only in these values (top-2 with a pair
// table vs. top-3, tie-break on or off), so they are configuration, not code.
type Selection struct {
	TopK     int   `yaml:"top_k,omitempty"    json:"top_k,omitempty"`
	TieBreak *bool `yaml:"tie_break,omitempty" json:"tie_break,omitempty"`
}

// TieBreakEnabled reports whether deterministic tie-breaking is on.
// Unset means enabled.
func (s Selection) TieBreakEnabled() bool {
	return s.TieBreak == nil || *s.TieBreak
}

// Catalog is the full static instrument definition: dimensions, items,
// scale, profile tables and selection parameters. It is loaded once and
// treated as read-only for the whole session.
type Catalog struct {
	Name       string      `yaml:"name,omitempty" json:"name,omitempty"`
	Scale      Scale       `yaml:"scale"          json:"scale"`
	Dimensions []Dimension `yaml:"dimensions"     json:"dimensions"`
	Items      []Item      `yaml:"items"          json:"items"`
	Profiles   ProfileSet  `yaml:"profiles"       json:"profiles"`
	Selection  Selection   `yaml:"selection,omitempty" json:"selection,omitempty"`
	Levels     Levels      `yaml:"levels,omitempty"    json:"levels,omitempty"`
}

// Dimension returns the dimension with the given ID.
func (c *Catalog) Dimension(id string) (Dimension, bool) {
	for _, d := range c.Dimensions {
		if d.ID == id {
			return d, true
		}
	}
	return Dimension{}, false
}

// ItemsFor returns the items belonging to a dimension, in catalog order.
func (c *Catalog) ItemsFor(dimensionID string) []Item {
	var items []Item
	for _, it := range c.Items {
		if it.Dimension == dimensionID {
			items = append(items, it)
		}
	}
	return items
}

// Validate checks the structural integrity of the catalog. A broken
// catalog is a configuration bug, not a user error, so every problem
// found is reported at once.
func (c *Catalog) Validate() error {
	var problems []string

	if c.Scale.Min >= c.Scale.Max {
		problems = append(problems, fmt.Sprintf("scale %d..%d is not a valid interval", c.Scale.Min, c.Scale.Max))
	}
	if len(c.Scale.Labels) > 0 && len(c.Scale.Labels) != c.Scale.Size() {
		problems = append(problems, fmt.Sprintf("scale has %d labels for %d points", len(c.Scale.Labels), c.Scale.Size()))
	}

	if len(c.Dimensions) == 0 {
		problems = append(problems, "catalog defines no dimensions")
	}
	seenDims := make(map[string]bool, len(c.Dimensions))
	for _, d := range c.Dimensions {
		if d.ID == "" {
			problems = append(problems, "dimension with empty id")
			continue
		}
		if strings.Contains(d.ID, KeySeparator) {
			problems = append(problems, fmt.Sprintf("dimension id %q contains the key separator %q", d.ID, KeySeparator))
		}
		if seenDims[d.ID] {
			problems = append(problems, fmt.Sprintf("duplicate dimension id %q", d.ID))
		}
		seenDims[d.ID] = true
	}

	itemCount := make(map[string]int, len(c.Dimensions))
	seenItems := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if it.ID == "" {
			problems = append(problems, "item with empty id")
			continue
		}
		if seenItems[it.ID] {
			problems = append(problems, fmt.Sprintf("duplicate item id %q", it.ID))
		}
		seenItems[it.ID] = true
		if !seenDims[it.Dimension] {
			problems = append(problems, fmt.Sprintf("item %q references unknown dimension %q", it.ID, it.Dimension))
			continue
		}
		itemCount[it.Dimension]++
	}
	for _, d := range c.Dimensions {
		if d.ID != "" && itemCount[d.ID] == 0 {
			problems = append(problems, fmt.Sprintf("dimension %q has no items; its average would be undefined", d.ID))
		}
	}

	problems = append(problems, c.Profiles.validate()...)

	if !c.Levels.IsZero() && c.Levels.Low > c.Levels.High {
		problems = append(problems, fmt.Sprintf("level cut points inverted: low %.2f above high %.2f", c.Levels.Low, c.Levels.High))
	}

	if len(problems) > 0 {
		return &CatalogError{Problems: problems}
	}
	return nil
}
