package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/tiller/internal/config"
)

func TestSetup_WritesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TILLER_CONFIG_HOME", dir)
	repo := t.TempDir()

	out, err := execute(t, defaultEnvironment(),
		"setup", "--editor", "nano", "--repo", repo, "--folder", "til")
	require.NoError(t, err, out)
	assert.Contains(t, out, "created:")

	cfg, err := config.Load(config.File(dir))
	require.NoError(t, err)
	assert.Equal(t, "nano", cfg.Editor)
	assert.Equal(t, repo, cfg.RepoPath)
	assert.Equal(t, filepath.Join(repo, "til"), cfg.NotesPath())
	assert.Equal(t, "origin", cfg.Remote)
	assert.Equal(t, "master", cfg.Branch)

	tmpl, err := config.LoadTemplate(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTemplate, tmpl)
}

func TestSetup_KeepsExisting(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TILLER_CONFIG_HOME", dir)
	require.NoError(t, os.WriteFile(config.TemplateFile(dir), []byte("custom $TITLE"), 0o600))

	out, err := execute(t, defaultEnvironment(), "setup", "--editor", "vim", "--repo", t.TempDir())
	require.NoError(t, err, out)
	assert.Contains(t, out, "kept:")

	tmpl, err := config.LoadTemplate(dir)
	require.NoError(t, err)
	assert.Equal(t, "custom $TITLE", tmpl)

	out, err = execute(t, defaultEnvironment(), "setup", "--editor", "vim", "--repo", t.TempDir(), "--force")
	require.NoError(t, err, out)
	assert.Contains(t, out, "overwritten:")

	tmpl, err = config.LoadTemplate(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTemplate, tmpl)
}

func TestSetup_RootFlag(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TILLER_CONFIG_HOME", dir)
	t.Setenv("EDITOR", "vim")

	_, err := execute(t, defaultEnvironment(), "--setup")
	require.NoError(t, err)

	_, err = os.Stat(config.File(dir))
	assert.NoError(t, err)
}

func TestSetup_RejectsAbsoluteFolder(t *testing.T) {
	t.Setenv("TILLER_CONFIG_HOME", t.TempDir())

	_, err := execute(t, defaultEnvironment(),
		"setup", "--editor", "vim", "--repo", t.TempDir(), "--folder", "/abs")
	require.Error(t, err)
}
