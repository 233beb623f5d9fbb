package cli

import (
	"os"
	"path/filepath"
)

func dirName(tag string) string {
	return tag
}

func configBase(home string) string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = home
	}
	return c
}

func logBase(home string) string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = home
	}
	return filepath.Join(c, "Logs")
}
