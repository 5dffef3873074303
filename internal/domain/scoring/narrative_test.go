package scoring_test

import (
	"testing"

	"github.com/ccwkit/ccwkit/internal/domain"
	"github.com/ccwkit/ccwkit/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeNarrative(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"trims and joins", []string{"  hello ", " world  "}, "hello world"},
		{"collapses internal runs", []string{"a  b\t\tc", "d\n\ne"}, "a b c d e"},
		{"drops empty parts", []string{"", "x", "   ", "y"}, "x y"},
		{"all empty", []string{"", "  "}, ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoring.NormalizeNarrative(tt.parts))
		})
	}
}

func TestNarrative_ConcatenatesTopDimensionDescriptions(t *testing.T) {
	cat := &domain.Catalog{
		Dimensions: []domain.Dimension{
			{ID: "d1", Description: "  You dream  big. "},
			{ID: "d2", Description: "You build\nnetworks."},
			{ID: "d3", Description: ""},
		},
	}

	got := scoring.Narrative(cat, []string{"d1", "d2", "d3"})
	assert.Equal(t, "You dream big. You build networks.", got)
}

func TestNarrative_UnknownDimensionsContributeNothing(t *testing.T) {
	cat := &domain.Catalog{
		Dimensions: []domain.Dimension{{ID: "d1", Description: "Something."}},
	}
	assert.Equal(t, "Something.", scoring.Narrative(cat, []string{"d1", "ghost"}))
}
