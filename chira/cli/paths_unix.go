//go:build aix || dragonfly || freebsd || (js && wasm) || nacl || linux || netbsd || openbsd || solaris
// +build aix dragonfly freebsd js,wasm nacl linux netbsd openbsd solaris

package cli

import (
	"os"
	"path/filepath"
	"strings"
)

func dirName(tag string) string {
	return strings.ToLower(tag)
}

func configBase(home string) string {
	c, err := os.UserConfigDir()
	if err != nil {
		c = filepath.Join(home, ".config")
	}
	return c
}

func logBase(home string) string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = home
	}
	return filepath.Join(c, "logs")
}
