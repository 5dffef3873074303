// Package scoring implements the pure transformation from raw survey
// responses to a resolved profile: per-dimension averages, deterministic
// ranking, and canonical combination lookup. Every function here is a pure
// function of its inputs; nothing is logged, cached or mutated.
package scoring

import (
	"math"

	"github.com/ccwkit/ccwkit/internal/domain"
)

// Averages maps dimension IDs to their mean transformed item score.
// Dimensions without items carry NaN and are excluded from ranking.
type Averages map[string]float64

// Score converts a complete response set into per-dimension averages.
// Reverse-scored items are transformed exactly once, before summation.
// An incomplete response set yields a MissingResponseError naming the
// first unanswered item in catalog order; an out-of-range value yields
// an InvalidResponseValueError.
func Score(cat *domain.Catalog, responses domain.Responses) (Averages, error) {
	sums := make(map[string]float64, len(cat.Dimensions))
	counts := make(map[string]int, len(cat.Dimensions))

	for _, it := range cat.Items {
		raw, ok := responses[it.ID]
		if !ok {
			return nil, &domain.MissingResponseError{ItemID: it.ID}
		}
		if !cat.Scale.Contains(raw) {
			return nil, &domain.InvalidResponseValueError{ItemID: it.ID, Value: raw, Scale: cat.Scale}
		}

		v := raw
		if it.Reverse {
			v = cat.Scale.Reverse(raw)
		}
		sums[it.Dimension] += float64(v)
		counts[it.Dimension]++
	}

	avgs := make(Averages, len(cat.Dimensions))
	for _, d := range cat.Dimensions {
		if counts[d.ID] == 0 {
			avgs[d.ID] = math.NaN()
			continue
		}
		avgs[d.ID] = sums[d.ID] / float64(counts[d.ID])
	}
	return avgs, nil
}
