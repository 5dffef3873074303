package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/ccwkit/ccwkit/internal/domain"
)

// tieEpsilon is the tolerance below which two averages count as equal.
// It guards against floating-point division artifacts, not semantic ties.
const tieEpsilon = 1e-9

// Options control the variant behavior of the ranking stage.
type Options struct {
	// TieBreak enables the deterministic secondary sort on display labels.
	TieBreak bool
}

// Rank orders dimensions by average descending and returns the first k,
// with tie-breaking enabled. k <= 0 or k beyond the number of ranked
// dimensions returns the full ranking; a short ranking is not an error.
func Rank(cat *domain.Catalog, avgs Averages, k int) []domain.RankedEntry {
	return RankWith(cat, avgs, k, Options{TieBreak: true})
}

// RankWith is Rank with explicit options. Dimensions with non-finite
// averages do not participate. The output is byte-identical for identical
// input regardless of map iteration order: candidates are seeded in
// catalog declaration order and the sort is stable with a total
// comparator (average desc, then display label case-insensitive asc,
// then raw ID).
func RankWith(cat *domain.Catalog, avgs Averages, k int, opts Options) []domain.RankedEntry {
	entries := make([]domain.RankedEntry, 0, len(cat.Dimensions))
	for _, d := range cat.Dimensions {
		avg, ok := avgs[d.ID]
		if !ok || math.IsNaN(avg) || math.IsInf(avg, 0) {
			continue
		}
		entries = append(entries, domain.RankedEntry{
			Dimension: d.ID,
			Label:     d.DisplayLabel(),
			Average:   avg,
			Level:     cat.Levels.For(avg),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if math.Abs(a.Average-b.Average) > tieEpsilon {
			return a.Average > b.Average
		}
		if !opts.TieBreak {
			return false // stable: keep catalog order
		}
		la, lb := strings.ToLower(a.Label), strings.ToLower(b.Label)
		if la != lb {
			return la < lb
		}
		return a.Dimension < b.Dimension
	})

	if k > 0 && k < len(entries) {
		entries = entries[:k]
	}
	return entries
}

// Dimensions extracts the dimension-ID subsequence of a ranking, rank
// order preserved.
func Dimensions(entries []domain.RankedEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Dimension
	}
	return ids
}
