package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ccwkit/ccwkit/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCatalog = `
name: fixture
dimensions:
  - id: d1
    label: Alpha
    description: Alpha strength.
  - id: d2
    label: Beta
    description: Beta strength.
items:
  - id: q1
    dimension: d1
    text: first statement
  - id: q2
    dimension: d1
    text: second statement
    reverse: true
  - id: q3
    dimension: d2
    text: third statement
profiles:
  default: fallback
  combinations:
    "d1|d2": paired
  records:
    paired:
      title: Paired
      description: Both strengths together.
    fallback:
      title: Fallback
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAssessCommand_JSON(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeFixture(t, "catalog.yaml", fixtureCatalog)
	answersPath := writeFixture(t, "answers.yaml", "answers:\n  q1: 5\n  q2: 2\n  q3: 3\n")

	out, err := runCommand(t, "assess", answersPath, "--catalog", catalogPath, "--json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output should be valid JSON")
	assert.Equal(t, "d1|d2", result["profile_key"])
	assert.Equal(t, "paired", result["profile_id"])
	assert.Equal(t, false, result["fallback"])
}

func TestAssessCommand_RendersProfile(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeFixture(t, "catalog.yaml", fixtureCatalog)
	answersPath := writeFixture(t, "answers.yaml", "q1: 5\nq2: 2\nq3: 3\n")

	out, err := runCommand(t, "assess", answersPath, "--catalog", catalogPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Paired")
	assert.Contains(t, out, "Alpha")
}

func TestAssessCommand_IncompleteAnswers(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeFixture(t, "catalog.yaml", fixtureCatalog)
	answersPath := writeFixture(t, "answers.yaml", "q1: 5\nq3: 3\n")

	_, err := runCommand(t, "assess", answersPath, "--catalog", catalogPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q2")
}

func TestAssessCommand_RequiresAnswersFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := runCommand(t, "assess")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "answers file")
}

func TestAssessCommand_HistoryEmpty(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := runCommand(t, "assess", "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "No report history found.")
}

func TestAssessCommand_HistoryAfterRun(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeFixture(t, "catalog.yaml", fixtureCatalog)
	answersPath := writeFixture(t, "answers.yaml", "q1: 5\nq2: 2\nq3: 3\n")

	_, err := runCommand(t, "assess", answersPath, "--catalog", catalogPath)
	require.NoError(t, err)

	out, err := runCommand(t, "assess", "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "paired")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ccwkit")
}
