package domain

import "time"

// RankedEntry is one row of the ranking: a dimension, its average and the
// banded level. Averages are kept unrounded; two-decimal display is a
// presentation concern.
type RankedEntry struct {
	Dimension string  `json:"dimension"`
	Label     string  `json:"label"`
	Average   float64 `json:"average"`
	Level     string  `json:"level"`
}

// Resolution is the outcome of the profile lookup. Fallback is true when
// the combination table had no entry for the key, which is normal for a
// partially populated table and never an error.
type Resolution struct {
	Key       string  `json:"key"`
	ProfileID string  `json:"profile_id"`
	Profile   Profile `json:"profile"`
	Fallback  bool    `json:"fallback"`
}

// Report is the full outcome of one assessment run.
type Report struct {
	CatalogName string    `json:"catalog_name,omitempty"`
	CatalogHash string    `json:"catalog_hash,omitempty"`
	Timestamp   time.Time `json:"timestamp"`

	Scale Scale `json:"scale"`
	TopK  int   `json:"top_k"`

	Ranking []RankedEntry `json:"ranking"`
	Top     []string      `json:"top"`

	ProfileKey string  `json:"profile_key"`
	ProfileID  string  `json:"profile_id"`
	Profile    Profile `json:"profile"`
	Fallback   bool    `json:"fallback"`
	Narrative  string  `json:"narrative,omitempty"`
}

// ReportEntry is the condensed history line persisted after each run.
// Only derived results are stored, never raw responses.
type ReportEntry struct {
	Timestamp   string   `json:"timestamp"`
	CatalogHash string   `json:"catalog_hash,omitempty"`
	ProfileID   string   `json:"profile_id"`
	Top         []string `json:"top"`
}
