package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// useTestdata points the global flags at the sample document.
func useTestdata(t *testing.T) *bytes.Buffer {
	t.Helper()
	logger = zap.NewNop()
	file = filepath.Join("..", "..", "config", "testdata", "spaces.yaml")
	fuel = 0
	t.Cleanup(func() { file = "uniformity.yaml" })

	return &bytes.Buffer{}
}

func TestCheckCmd(t *testing.T) {
	out := useTestdata(t)
	parallel, failFast = 2, false
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	require.NoError(t, runCheck(cmd, nil))
	assert.Contains(t, out.String(), "ok    halves/axioms/half")
	assert.Contains(t, out.String(), "ok    fixed/compare-self")
	assert.NotContains(t, out.String(), "FAIL")
}

func TestOpensCmd(t *testing.T) {
	out := useTestdata(t)
	spaceName, openLimit = "halves", 12
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	require.NoError(t, runOpens(cmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "{p0, p1}", lines[1])
	assert.Equal(t, "4 open sets, separated: false", lines[4])

	spaceName = "missing"
	assert.Error(t, runOpens(cmd, nil))
}

func TestCompareCmd(t *testing.T) {
	out := useTestdata(t)
	fromCompletion, withCompletion = "decimal", "fixed"
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	require.NoError(t, runCompare(cmd, nil))
	assert.Contains(t, out.String(), "0.5 -> 128\n")
	assert.Contains(t, out.String(), "round trip: true")
}

func TestLoadRegistry_Errors(t *testing.T) {
	useTestdata(t)
	fuel = -1
	_, err := loadRegistry()
	assert.Error(t, err)

	fuel = 0
	file = filepath.Join(t.TempDir(), "absent.yaml")
	_, err = loadRegistry()
	assert.Error(t, err)
}
