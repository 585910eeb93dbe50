package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNote(t *testing.T, nb *notebook, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(nb.folder, name), []byte(content), 0o600))
}

func TestList_Table(t *testing.T) {
	nb := newNotebook(t)
	writeNote(t, nb, "02.md", "---\ntitle: 02\ndate: 2024-01-02T09:00:00\n---\n \n # Context cancellation")
	writeNote(t, nb, "01.md", "# Slices share arrays")
	writeNote(t, nb, "readme.md", "# not a note")

	out, err := execute(t, &environment{runner: fakeGit(""), clock: fixedClock},
		"--config", nb.configPath, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, out)
	assert.True(t, strings.HasPrefix(lines[0], "FILE"))
	assert.Contains(t, lines[1], "01.md")
	assert.Contains(t, lines[1], "Slices share arrays")
	assert.Contains(t, lines[2], "Context cancellation")
	assert.Contains(t, lines[2], "2024-01-02T09:00:00")
}

func TestList_JSONEmpty(t *testing.T) {
	nb := newNotebook(t)

	out, err := execute(t, &environment{runner: fakeGit(""), clock: fixedClock},
		"--config", nb.configPath, "--json", "list")
	require.NoError(t, err)

	var result struct {
		Count int               `json:"count"`
		Notes []json.RawMessage `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	assert.Zero(t, result.Count)
	assert.NotNil(t, result.Notes)
}

func TestSearch(t *testing.T) {
	nb := newNotebook(t)
	writeNote(t, nb, "01.md", "# Tricks with slices")
	writeNote(t, nb, "02.md", "# Context cancellation")

	out, err := execute(t, &environment{runner: fakeGit(""), clock: fixedClock},
		"--config", nb.configPath, "--json", "search", "slice")
	require.NoError(t, err)

	var result struct {
		Count int `json:"count"`
		Notes []struct {
			FileName string `json:"file"`
		} `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "01.md", result.Notes[0].FileName)
}

func TestSearch_RequiresQuery(t *testing.T) {
	nb := newNotebook(t)
	_, err := execute(t, &environment{runner: fakeGit(""), clock: fixedClock},
		"--config", nb.configPath, "search")
	require.Error(t, err)
}

func TestNext(t *testing.T) {
	nb := newNotebook(t, "01.md", "09.md", "notes.txt")
	fake := fakeGit("")

	out, err := execute(t, &environment{runner: fake, clock: fixedClock},
		"--config", nb.configPath, "next")
	require.NoError(t, err)
	assert.Equal(t, "10.md\n", out)
	assert.Empty(t, fake.Calls, "next must not touch git")
}

func TestNext_Full(t *testing.T) {
	nb := newNotebook(t, "99.md")

	_, err := execute(t, &environment{runner: fakeGit(""), clock: fixedClock},
		"--config", nb.configPath, "next")
	require.Error(t, err)
}
