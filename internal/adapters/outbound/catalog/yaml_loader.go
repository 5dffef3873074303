package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/ccwkit/ccwkit/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed ccw.yaml
var embeddedCCW []byte

// YAMLLoader implements domain.CatalogLoader by reading catalog YAML files.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads and parses a catalog file.
func (l *YAMLLoader) Load(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	cat, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cat, nil
}

// Default returns the embedded Community Cultural Wealth catalog.
func (l *YAMLLoader) Default() (*domain.Catalog, error) {
	return parse(embeddedCCW)
}

func parse(data []byte) (*domain.Catalog, error) {
	var cat domain.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	applyDefaults(&cat)
	canonicalizeCombinations(&cat)
	return &cat, nil
}

// applyDefaults fills unset fields with the instrument's standard values:
// a 1..6 scale, top-2 selection, and the standard level cut points.
func applyDefaults(cat *domain.Catalog) {
	if cat.Scale.Min == 0 && cat.Scale.Max == 0 {
		cat.Scale = domain.Scale{Min: 1, Max: 6}
	}
	if cat.Selection.TopK == 0 {
		cat.Selection.TopK = 2
	}
	if cat.Levels.IsZero() {
		cat.Levels = domain.DefaultLevels()
	}
}

// canonicalizeCombinations rewrites combination keys into canonical form.
// Catalog authors historically listed pairs in ranked order ("top|second"),
// so both orders of the same set must land on one table entry.
func canonicalizeCombinations(cat *domain.Catalog) {
	if len(cat.Profiles.Combinations) == 0 {
		return
	}
	canonical := make(map[string]string, len(cat.Profiles.Combinations))
	for key, id := range cat.Profiles.Combinations {
		parts := strings.Split(key, domain.KeySeparator)
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		canonical[domain.CanonicalKey(parts)] = id
	}
	cat.Profiles.Combinations = canonical
}
