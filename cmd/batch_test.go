package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBatch(t *testing.T) {
	out, _, err := run(t, "5\n\n15\n5\n10n\n", "batch", "0", "10")
	require.NoError(t, err)
	assert.Equal(t, "5: true\n15: false\n5: true\n10n: true\n", out)
}

func TestBatchStats(t *testing.T) {
	out, errOut, err := run(t, "1\n1\n1\n", "batch", "--stats", "0", "10")
	require.NoError(t, err)
	assert.Equal(t, "1: true\n1: true\n1: true\n", out)
	assert.Contains(t, errOut, "cache: size=1 capacity=4096 hits=2 misses=1\n")
}

func TestBatchStrict(t *testing.T) {
	_, _, err := run(t, "1\nnull\n", "batch", "--strict", "0", "10")
	require.Error(t, err)
	assert.Equal(t, "null: validation failed: range boundary or value is absent", err.Error())
}

func TestFromValuesStdin(t *testing.T) {
	out, _, err := run(t, "5\n-2\n15, 8\n", "from-values")
	require.NoError(t, err)
	assert.Equal(t, "[-2,15]\n", out)
}

func TestFromValuesJSONStdin(t *testing.T) {
	out, _, err := run(t, `[1, "20n", null]`, "from-values", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "[NaN,NaN]\n", out)
}

func TestColorOutput(t *testing.T) {
	out, _, err := run(t, "", "check", "--color", "5", "0", "10")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[32mtrue\x1b[0m\n", out)
}
