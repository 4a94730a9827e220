package cli

import (
	"os"
	"path/filepath"
)

// Configuration goes below %AppData%, logs below the local cache directory.

func (a appPaths) ConfigDir() string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, a.dirname())
}

func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "Logs", a.dirname())
}
