package answers

import (
	"fmt"
	"os"

	"github.com/ccwkit/ccwkit/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads a completed response set from a YAML file. Two shapes are
// accepted: a document with an `answers:` mapping, or a bare mapping of
// item IDs to values.
func Load(path string) (domain.Responses, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	responses, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return responses, nil
}

func parse(data []byte) (domain.Responses, error) {
	var wrapped struct {
		Answers map[string]int `yaml:"answers"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && len(wrapped.Answers) > 0 {
		return wrapped.Answers, nil
	}

	var bare map[string]int
	if err := yaml.Unmarshal(data, &bare); err != nil {
		return nil, err
	}
	if len(bare) == 0 {
		return nil, fmt.Errorf("no answers found")
	}
	return bare, nil
}
