package domain

import (
	"fmt"
	"sort"
	"strings"
)

// KeySeparator joins sorted dimension IDs into a canonical combination key.
// It may not appear inside a dimension ID.
const KeySeparator = "|"

// Profile is a static narrative record selected by a dimension combination.
type Profile struct {
	Title       string   `yaml:"title"                 json:"title"`
	Description string   `yaml:"description"           json:"description"`
	Suggestions []string `yaml:"suggestions,omitempty" json:"suggestions,omitempty"`
	Image       string   `yaml:"image,omitempty"       json:"image,omitempty"`
}

// ProfileSet holds the combination lookup table and the profile records.
// Combinations maps canonical keys to profile IDs. The table is allowed to
// cover only part of the combinatorial space; anything absent resolves to
// Default.
type ProfileSet struct {
	Default      string             `yaml:"default"                json:"default"`
	Combinations map[string]string  `yaml:"combinations,omitempty" json:"combinations,omitempty"`
	Records      map[string]Profile `yaml:"records"                json:"records"`
}

// CanonicalKey builds the order-independent lookup key for a set of
// dimension IDs: sorted lexicographically and joined with KeySeparator.
func CanonicalKey(dimensionIDs []string) string {
	ids := make([]string, len(dimensionIDs))
	copy(ids, dimensionIDs)
	sort.Strings(ids)
	return strings.Join(ids, KeySeparator)
}

func (p ProfileSet) validate() []string {
	var problems []string

	if p.Default == "" {
		problems = append(problems, "profiles: no default profile id")
	} else if _, ok := p.Records[p.Default]; !ok {
		problems = append(problems, fmt.Sprintf("profiles: default %q has no record", p.Default))
	}

	for key, id := range p.Combinations {
		if _, ok := p.Records[id]; !ok {
			problems = append(problems, fmt.Sprintf("profiles: combination %q maps to unknown profile %q", key, id))
		}
		if canonical := CanonicalKey(strings.Split(key, KeySeparator)); canonical != key {
			problems = append(problems, fmt.Sprintf("profiles: combination key %q is not canonical (want %q)", key, canonical))
		}
	}

	for id, rec := range p.Records {
		if rec.Title == "" {
			problems = append(problems, fmt.Sprintf("profiles: record %q has no title", id))
		}
	}

	return problems
}
