// Package config resolves issuepage configuration: the global configuration
// directory, the optional YAML config file, and environment overrides.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "issuepage"

// Dir returns the issuepage configuration directory.
//
// Resolution:
//   - $ISSUEPAGE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/issuepage if set (respects XDG on any platform)
//   - %AppData%/issuepage on Windows
//   - ~/.config/issuepage on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
