package cli

import (
	"os"
	"strings"
)

// AppPaths is an interface to determine application specific paths for
// configuration and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent
// defaults set, given appTag. appTag is a string specific to a client's
// application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

// appHome resolves the user's home directory; the per-platform directory
// layout below it lives in the paths_<os>.go files.
func appHome(appTag string) (a appPaths, err error) {
	a = appPaths{tag: appTag}
	a.home, err = os.UserHomeDir()
	if err != nil {
		a.home = ""
	}
	return
}

// directory name for this application, derived from the app tag
func (a appPaths) dirname() string {
	return strings.ToLower(a.tag)
}
