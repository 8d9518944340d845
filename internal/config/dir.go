// Package config resolves inkwell settings from defaults, an optional
// inkwell.yaml file and INKWELL_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the global inkwell configuration directory.
//
// Resolution:
//   - $INKWELL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/inkwell if set (respects XDG on any platform)
//   - %AppData%/inkwell on Windows
//   - ~/.config/inkwell on macOS and Linux
func Dir() string {
	if dir := os.Getenv("INKWELL_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "inkwell")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "inkwell")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "inkwell")
}
