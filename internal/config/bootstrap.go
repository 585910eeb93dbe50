package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gorewood/tiller/internal/output"
)

// File states reported by Bootstrap.
const (
	StatusCreated = "created"
	StatusKept    = "kept"
	StatusWritten = "overwritten"
)

// BootstrapResult reports what happened to one default file.
type BootstrapResult struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// Bootstrap writes config.json and prepend.md into dir.
// Existing files are kept unless force is set.
func Bootstrap(dir string, cfg Config, force bool) ([]BootstrapResult, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create config directory: "+dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to encode config", err)
	}

	files := []struct {
		path    string
		content []byte
	}{
		{File(dir), append(data, '\n')},
		{TemplateFile(dir), []byte(DefaultTemplate)},
	}

	results := make([]BootstrapResult, 0, len(files))
	for _, f := range files {
		status, err := writeDefault(f.path, f.content, force)
		if err != nil {
			return results, err
		}
		results = append(results, BootstrapResult{Path: f.path, Status: status})
	}
	return results, nil
}

func writeDefault(path string, content []byte, force bool) (string, error) {
	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return "", output.NewSystemErrorWithCause("failed to stat "+path, statErr)
	}
	if exists && !force {
		return StatusKept, nil
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("failed to write %s", path), err)
	}
	if exists {
		return StatusWritten, nil
	}
	return StatusCreated, nil
}
