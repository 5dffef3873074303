package answers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ccwkit/ccwkit/internal/adapters/outbound/answers"
	"github.com/ccwkit/ccwkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_WrappedForm(t *testing.T) {
	path := writeAnswers(t, `
answers:
  q1: 5
  q2: 3
`)
	got, err := answers.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Responses{"q1": 5, "q2": 3}, got)
}

func TestLoad_BareForm(t *testing.T) {
	path := writeAnswers(t, `
q1: 5
q2: 3
`)
	got, err := answers.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Responses{"q1": 5, "q2": 3}, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := answers.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoAnswers(t *testing.T) {
	path := writeAnswers(t, `{}`)
	_, err := answers.Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeAnswers(t, `q1: [not a number`)
	_, err := answers.Load(path)
	assert.Error(t, err)
}
