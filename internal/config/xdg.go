package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the XDG-compliant config directory for tbl
// Typically ~/.config/tbl/ on Linux
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "tbl")
}

// ConfigPath returns the full path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}
