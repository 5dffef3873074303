package cli_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ccwkit/ccwkit/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInteractive(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunCommand_CompletesSession(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeFixture(t, "catalog.yaml", fixtureCatalog)

	out, err := runInteractive(t, "5\n2\n3\n", "run", "--catalog", catalogPath)
	require.NoError(t, err)
	assert.Contains(t, out, "first statement")
	assert.Contains(t, out, "Paired")
}

func TestRunCommand_RepromptsOnBadInput(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeFixture(t, "catalog.yaml", fixtureCatalog)

	// "9" and "abc" are out of range; the prompt repeats until valid.
	out, err := runInteractive(t, "9\nabc\n5\n2\n3\n", "run", "--catalog", catalogPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Paired")
}

func TestRunCommand_JSON(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeFixture(t, "catalog.yaml", fixtureCatalog)

	out, err := runInteractive(t, "5\n2\n3\n", "run", "--catalog", catalogPath, "--json")
	require.NoError(t, err)

	// The JSON report follows the prompts; find the opening brace.
	idx := strings.Index(out, "{")
	require.GreaterOrEqual(t, idx, 0)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out[idx:]), &result))
	assert.Equal(t, "paired", result["profile_id"])
}

func TestRunCommand_InputEndsEarly(t *testing.T) {
	t.Chdir(t.TempDir())
	catalogPath := writeFixture(t, "catalog.yaml", fixtureCatalog)

	_, err := runInteractive(t, "5\n", "run", "--catalog", catalogPath)
	require.Error(t, err)
}
