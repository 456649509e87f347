package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o600))
	return path
}

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"autocomplete"}, args...))
	return out.String(), err
}

func TestComplete(t *testing.T) {
	path := writeDataset(t, "Cat", "car", "care", "dog")
	out, err := runApp(t, "", "--dataset", path, "--limit", "2", "complete", "ca", "DO", "x")
	require.NoError(t, err)

	assert.Contains(t, out, "Successfully loaded 4 words from dataset.")
	assert.Contains(t, out, "Auto-complete suggestions for 'ca':")
	assert.Contains(t, out, "Auto-complete suggestions for 'do':")
	assert.Contains(t, out, "Auto-complete suggestions for 'x':")
	assert.Contains(t, out, "car")
	assert.Contains(t, out, "care")
	assert.NotContains(t, out, "cat")
	assert.Contains(t, out, "dog")
}

func TestComplete_MissingPrefix(t *testing.T) {
	path := writeDataset(t, "cat")
	_, err := runApp(t, "", "--dataset", path, "complete")
	assert.ErrorContains(t, err, "missing prefix")
}

func TestSearch(t *testing.T) {
	path := writeDataset(t, "cat", "car")
	out, err := runApp(t, "", "--dataset", path, "search", "CAR", "ca")
	require.NoError(t, err)

	assert.Contains(t, out, "Word 'car' FOUND in Trie")
	assert.Contains(t, out, "Word 'car' FOUND in TST")
	assert.Contains(t, out, "Word 'ca' NOT FOUND in Trie")
	assert.Contains(t, out, "Word 'ca' NOT FOUND in TST")
}

func TestCompare(t *testing.T) {
	path := writeDataset(t, "alpha", "beta", "gamma", "delta", "epsilon")
	out, err := runApp(t, "", "--dataset", path, "compare", "--sample", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Testing with 3 words...")
	assert.Contains(t, out, "Number of words tested: 3")
	assert.Contains(t, out, "SUMMARY:")
}

func TestCompare_InvalidSample(t *testing.T) {
	path := writeDataset(t, "alpha")
	_, err := runApp(t, "", "--dataset", path, "compare", "--sample", "-1")
	assert.ErrorContains(t, err, "invalid sample size")
}

func TestMenu(t *testing.T) {
	path := writeDataset(t, "cat", "car", "care", "dog")
	out, err := runApp(t, "1\n7\nca\n0\n", "--dataset", path, "--limit", "1", "menu")
	require.NoError(t, err)

	assert.Contains(t, out, "Loaded 4 words into Trie")
	assert.Contains(t, out, "  car\nTotal: 1 suggestions")
	assert.Contains(t, out, "Goodbye!")
}

func TestMissingDataset(t *testing.T) {
	_, err := runApp(t, "", "--dataset", filepath.Join(t.TempDir(), "none.txt"), "search", "a")
	assert.ErrorContains(t, err, "could not open dataset")
}
