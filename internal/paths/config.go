// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ConfigDirName is the per-project configuration directory.
	ConfigDirName = ".tidk"
	// ConfigFileName is the configuration file inside a config directory.
	ConfigFileName = "config.yaml"
)

// ResolveConfigDir resolves the .tidk directory path from user input.
// It normalizes the input (accepting either a project dir or the .tidk dir)
// and follows redirect files so several checkouts can share one config.
//
// Input normalization:
//   - "/path/to/project" -> "/path/to/project/.tidk"
//   - "/path/to/project/.tidk" -> "/path/to/project/.tidk"
//   - "/path/to/settings" (containing config.yaml) -> "/path/to/settings"
//   - "" or "." -> ".tidk", even when ./config.yaml exists
//
// The bare config.yaml rule only applies to an explicitly named directory;
// the working directory often holds another tool's config.yaml.
//
// Redirect handling:
//   - If .tidk/redirect exists, its content (relative to .tidk) is the real directory
func ResolveConfigDir(path string) string {
	if path == "" {
		path = "."
	}
	path = filepath.Clean(path)

	if filepath.Base(path) == ConfigDirName {
		return followRedirect(path)
	}

	if path != "." {
		if _, err := os.Stat(filepath.Join(path, ConfigFileName)); err == nil {
			return followRedirect(path)
		}
	}

	return followRedirect(filepath.Join(path, ConfigDirName))
}

// LocalConfigFile returns the config file of the project rooted at dir.
func LocalConfigFile(dir string) string {
	return filepath.Join(ResolveConfigDir(dir), ConfigFileName)
}

// UserConfigDir returns ~/.config/tidk, or "" when the home directory is unknown.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tidk")
}

// followRedirect checks for a redirect file and follows it if present.
func followRedirect(dir string) string {
	content, err := os.ReadFile(filepath.Join(dir, "redirect")) //nolint:gosec // redirect path is within the config dir
	if err != nil {
		return dir
	}

	target := strings.TrimSpace(string(content))
	if target == "" {
		return dir
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Clean(filepath.Join(dir, target))
}
