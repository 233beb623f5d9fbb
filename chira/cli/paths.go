package cli

import (
	"os"
	"path/filepath"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	ConfigFile() string // an existing configuration file, or ""
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	a := appPaths{tag: appTag}
	var err error
	if a.home, err = os.UserHomeDir(); err != nil {
		a.home = ""
	}
	return a, err
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

func (a appPaths) ConfigDir() string {
	return filepath.Join(configBase(a.home), dirName(a.tag))
}

func (a appPaths) LogDir() string {
	return filepath.Join(logBase(a.home), dirName(a.tag))
}

// configFileNames are tried in order.
var configFileNames = []string{"config.yaml", "config.yml", "config.toml"}

func (a appPaths) ConfigFile() string {
	dir := a.ConfigDir()
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}
