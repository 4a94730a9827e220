package cli

import (
	"os"
	"path/filepath"
)

// Configuration and logs both go below ~/Library/Application Support,
// which is where macOS wants per-application files.

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(a.home, "Library", "Application Support")
	}
	return filepath.Join(c, a.dirname())
}

func (a appPaths) LogDir() string {
	return filepath.Join(a.home, "Library", "Application Support", "Logs",
		a.dirname())
}
