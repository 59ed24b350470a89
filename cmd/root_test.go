package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesim/pagesim/sim"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	setFlagDefaults(t)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestRunCommand_JSONOutput(t *testing.T) {
	// WHEN run is invoked for LRU on the textbook stream
	out := execute(t, "run", "--log", "error", "--policy", "LRU", "--frames", "3",
		"--refs", "7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2", "--output", "json")

	// THEN the JSON result has the expected statistics
	var res sim.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, sim.LRU, res.Policy)
	assert.Equal(t, 9, res.PageFaults)
	assert.Equal(t, 4, res.Hits)
	assert.Equal(t, 13, res.Total)
}

func TestRunCommand_TextOutput(t *testing.T) {
	out := execute(t, "run", "--log", "error", "--policy", "FIFO", "--frames", "1",
		"--refs", "5,5,5", "--output", "text")

	assert.Contains(t, out, "=== FIFO, 1 frames ===")
	assert.Contains(t, out, "Page Faults : 1")
	assert.Contains(t, out, "Hits        : 2")
}

func TestCompareCommand_TextOutput(t *testing.T) {
	out := execute(t, "compare", "--log", "error", "--frames", "3",
		"--refs", "1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5", "--output", "text")

	assert.Contains(t, out, "=== Comparison ===")
	assert.Contains(t, out, "FIFO    9")
	assert.Contains(t, out, "LRU     10")
	assert.Contains(t, out, "LRU - FIFO faults: +1")
}

func TestRandomCommand_DeterministicForSeed(t *testing.T) {
	first := execute(t, "random", "--log", "error", "--seed", "7", "--length", "20", "--max-page", "5")
	second := execute(t, "random", "--log", "error", "--seed", "7", "--length", "20", "--max-page", "5")

	assert.Equal(t, first, second)
	refs, dropped := sim.ParseReferenceString(strings.TrimSpace(first), ",")
	assert.Empty(t, dropped)
	require.Len(t, refs, 20)
	for _, r := range refs {
		assert.True(t, r >= 0 && r < 5, "page %d out of range", r)
	}
}
