// Package config loads tiller's configuration and header template.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the configuration directory.
const AppName = "tiller"

// Dir returns the tiller configuration directory.
//
// Resolution:
//   - $TILLER_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/tiller if set (respects XDG on any platform)
//   - %AppData%/tiller on Windows
//   - ~/.config/tiller on macOS and Linux
func Dir() string {
	if dir := os.Getenv("TILLER_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// File returns the path of config.json inside dir.
func File(dir string) string {
	return filepath.Join(dir, "config.json")
}

// TemplateFile returns the path of the header template inside dir.
func TemplateFile(dir string) string {
	return filepath.Join(dir, "prepend.md")
}
