// Package paths provides XDG-compliant path resolution for the storefront.
//
// Resolution order:
// 1. STOREFRONT_HOME (portable root) → $STOREFRONT_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/storefront
// 3. Platform defaults → ~/.config/storefront, ~/.local/state/storefront
package paths

import (
	"os"
	"path/filepath"
)

const appName = "storefront"

func getConfigHome() string {
	if home := os.Getenv("STOREFRONT_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

func getStateHome() string {
	if home := os.Getenv("STOREFRONT_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the storefront configuration directory.
// The global storefront.yml lives here.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	if os.Getenv("STOREFRONT_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// StateDir returns the storefront state directory.
// Used for the local storage file and logs.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	if os.Getenv("STOREFRONT_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// StorageFile returns the default path of the local key/value storage file.
func StorageFile() string {
	return filepath.Join(StateDir(), "storage.yml")
}

// LogDir returns the directory for file log sinks.
func LogDir() string {
	return filepath.Join(StateDir(), "logs")
}

// EnsureDirs creates the storefront directories if they don't exist.
func EnsureDirs() error {
	for _, dir := range []string{ConfigDir(), StateDir()} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
