package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigDir returns the platform-appropriate directory for lexiprep's
// config file, honouring XDG_CONFIG_HOME on Linux, falling back to
// $HOME/.config/lexiprep everywhere else it applies.
func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "lexiprep"), nil
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "lexiprep"), nil
	default:
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "lexiprep"), nil
		}
		return filepath.Join(homeDir, ".config", "lexiprep"), nil
	}
}

// GetAbsolutePath returns the absolute form of path, or "unknown" for an
// empty path, falling back to the original string if resolution fails.
func GetAbsolutePath(path string) string {
	if path == "" {
		return "unknown"
	}
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	}
	return path
}
