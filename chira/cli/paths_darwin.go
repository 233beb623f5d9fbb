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
		c = filepath.Join(home, "Library", "Application Support")
	}
	return c
}

func logBase(home string) string {
	return filepath.Join(home, "Library", "Application Support", "Logs")
}
