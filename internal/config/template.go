package config

import (
	"os"

	"github.com/gorewood/tiller/internal/output"
)

// DefaultTemplate is written by Bootstrap as prepend.md.
const DefaultTemplate = `---
title: $TITLE
date: $DATE
---
`

// LoadTemplate reads the header template from dir.
func LoadTemplate(dir string) (string, error) {
	path := TemplateFile(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", output.NewUserErrorWithCause(
				"header template not found at "+path+": run 'tiller setup' to create it", err)
		}
		return "", output.NewSystemErrorWithCause("failed to read header template: "+path, err)
	}
	return string(data), nil
}
