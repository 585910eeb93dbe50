package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/tiller/internal/output"
	"github.com/gorewood/tiller/internal/publish"
)

// Config is the user's tiller configuration.
// It is read from config.json; the decoder is YAML, which accepts JSON.
type Config struct {
	Editor      string `yaml:"editor" json:"editor"`
	NotesFolder string `yaml:"til_folder" json:"til_folder"`
	RepoPath    string `yaml:"repo_path" json:"repo_path"`
	Remote      string `yaml:"remote,omitempty" json:"remote,omitempty"`
	Branch      string `yaml:"branch,omitempty" json:"branch,omitempty"`
}

// NotesPath returns the folder new notes are written to.
func (c Config) NotesPath() string {
	return filepath.Join(c.RepoPath, c.NotesFolder)
}

// Load reads and validates the configuration at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, output.NewUserErrorWithCause(
				"config not found at "+path+": run 'tiller setup' to create it", err)
		}
		return Config{}, output.NewSystemErrorWithCause("failed to read config: "+path, err)
	}
	return Parse(data)
}

// Parse decodes configuration bytes, applies defaults and validates.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, output.NewUserErrorWithCause("invalid config format: "+err.Error(), err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills the editor from the environment, the push target
// from the publish defaults and expands a leading ~ in the repo path.
func (c *Config) applyDefaults() {
	if c.Editor == "" {
		c.Editor = os.Getenv("VISUAL")
	}
	if c.Editor == "" {
		c.Editor = os.Getenv("EDITOR")
	}
	if c.Remote == "" {
		c.Remote = publish.DefaultRemote
	}
	if c.Branch == "" {
		c.Branch = publish.DefaultBranch
	}
	c.RepoPath = ExpandHome(c.RepoPath)
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Editor) == "":
		return output.NewUserError("config: editor is not set and $EDITOR is empty")
	case c.RepoPath == "":
		return output.NewUserError("config: repo_path is required")
	case filepath.IsAbs(c.NotesFolder):
		return output.NewUserError("config: til_folder must be relative to repo_path")
	}
	return nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
