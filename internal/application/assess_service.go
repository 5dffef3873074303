package application

import (
	"fmt"
	"time"

	"github.com/ccwkit/ccwkit/internal/domain"
	"github.com/ccwkit/ccwkit/internal/domain/scoring"
)

// AssessService orchestrates one assessment run:
// load catalog → validate → score → rank → resolve profile → report.
type AssessService struct {
	catalogs domain.CatalogLoader
}

func NewAssessService(catalogs domain.CatalogLoader) *AssessService {
	return &AssessService{catalogs: catalogs}
}

// LoadCatalog loads and validates a catalog. An empty path selects the
// embedded default instrument.
func (s *AssessService) LoadCatalog(path string) (*domain.Catalog, error) {
	var (
		cat *domain.Catalog
		err error
	)
	if path == "" {
		cat, err = s.catalogs.Default()
	} else {
		cat, err = s.catalogs.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Assess runs the full pipeline for a complete response set. topK <= 0
// uses the catalog's selection parameter. Scoring and ranking errors
// propagate unchanged so callers can match the typed domain errors.
func (s *AssessService) Assess(cat *domain.Catalog, responses domain.Responses, topK int) (*domain.Report, error) {
	if topK <= 0 {
		topK = cat.Selection.TopK
	}

	if c := domain.CheckCompleteness(cat, responses); !c.Complete {
		return nil, &domain.MissingResponseError{ItemID: c.FirstMissing}
	}

	avgs, err := scoring.Score(cat, responses)
	if err != nil {
		return nil, err
	}

	opts := scoring.Options{TieBreak: cat.Selection.TieBreakEnabled()}
	ranking := scoring.RankWith(cat, avgs, 0, opts)

	top := ranking
	if topK > 0 && topK < len(top) {
		top = top[:topK]
	}
	topIDs := scoring.Dimensions(top)

	res := scoring.ResolveProfile(topIDs, cat.Profiles)

	return &domain.Report{
		CatalogName: cat.Name,
		Timestamp:   time.Now(),
		Scale:       cat.Scale,
		TopK:        topK,
		Ranking:     ranking,
		Top:         topIDs,
		ProfileKey:  res.Key,
		ProfileID:   res.ProfileID,
		Profile:     res.Profile,
		Fallback:    res.Fallback,
		Narrative:   scoring.Narrative(cat, topIDs),
	}, nil
}
