package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runGenerate executes the generate subcommand with the given flags.
// Flag values persist across Execute calls in the same process, so each
// caller passes every flag it depends on and the slice flag is reset here.
func runGenerate(t *testing.T, args ...string) {
	t.Helper()
	templates = nil
	rootCmd.SetArgs(append([]string{"generate"}, args...))
	require.NoError(t, rootCmd.Execute())
}

func TestGenerateCommand_TracesPrintedToStdout(t *testing.T) {
	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// WHEN generate runs with default output
	runGenerate(t, "--seed", "42", "--count", "2", "--format", "text", "--out", "", "--domains", "", "--scenario", "default")

	// Restore stdout and read captured output
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	// THEN every template group MUST appear on stdout
	assert.True(t, strings.HasPrefix(output, "\n"), "output must open with a blank line")
	assert.Contains(t, output, "Generating Broadleaf update cart simulation")
	assert.Contains(t, output, "Generating Broadleaf decrement SKU simulation")
	assert.Contains(t, output, "['r-cart(")
}

func TestGenerateCommand_WritesToFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "traces.txt")
	runGenerate(t, "--seed", "42", "--count", "3", "--format", "text", "--out", outFile, "--domains", "", "--scenario", "default")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	output := string(data)

	assert.Contains(t, output, "Generating Broadleaf order payment simulation")
	assert.Contains(t, output, "'w-unconfirmed type'")
	assert.True(t, strings.HasSuffix(output, "\n\n"), "every group ends with a blank line")
}

func TestGenerateCommand_TemplateFilterAndJSON(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "traces.jsonl")
	runGenerate(t, "--seed", "42", "--count", "2", "--format", "json", "--out", outFile,
		"--template", "save-offer", "--domains", "", "--scenario", "default")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	// One run header plus one record per trace
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"run_id"`)
	assert.Contains(t, lines[0], `"seed":42`)
	for _, line := range lines[1:] {
		assert.Contains(t, line, `"template":"save-offer"`)
		assert.Contains(t, line, `"w-offerCode(`)
	}
}

func TestGenerateCommand_ScenarioPreset(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "traces.txt")
	runGenerate(t, "--seed", "42", "--count", "5", "--format", "text", "--out", outFile,
		"--template", "update-cart", "--domains", "", "--scenario", "high-contention")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	// High contention narrows the cart and order domains to ten keys each
	traceLines := 0
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "['") {
			continue
		}
		traceLines++
		assert.Regexp(t, `^\['r-cart\([0-9]\)', 'w-order\([0-9]\)'\]$`, line)
	}
	assert.Equal(t, 5, traceLines)
	assert.Contains(t, string(data), "Generating Broadleaf update cart simulation")
}

func TestGenerateCommand_DomainsFile(t *testing.T) {
	dir := t.TempDir()
	domainsFile := filepath.Join(dir, "domains.yaml")
	require.NoError(t, os.WriteFile(domainsFile, []byte("offer:\n  codes: 1\n"), 0o644))

	outFile := filepath.Join(dir, "traces.txt")
	runGenerate(t, "--seed", "42", "--count", "2", "--format", "text", "--out", outFile,
		"--template", "save-offer", "--domains", domainsFile, "--scenario", "default")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	want := "\nGenerating Broadleaf save offer simulation\n" +
		"['w-offerCode(0)', 'w-offer(0)']\n" +
		"['w-offerCode(0)', 'w-offer(0)']\n\n"
	assert.Equal(t, want, string(data))
}
