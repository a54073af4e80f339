package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "hexpp"

// Dir returns the per-user configuration directory. HEXPP_CONFIG_DIR
// overrides it.
func Dir() string {
	if override := os.Getenv("HEXPP_CONFIG_DIR"); override != "" {
		return override
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", appName)
	default:
		return filepath.Join(home, ".config", appName)
	}
}

var settingsNames = []string{"settings.toml", "settings.yaml", "settings.yml"}

// SettingsPath returns the first settings file found in Dir. When none
// exists it returns the TOML location and false.
func SettingsPath() (string, bool) {
	dir := Dir()
	for _, name := range settingsNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return filepath.Join(dir, settingsNames[0]), false
}
