package main

import (
	"os"
	"path/filepath"
)

const appDirName = "goruler"

// configDirPath is where settings.json is looked up. It falls back to the
// working directory when the user config dir is unavailable.
func configDirPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return "."
}

// logDirPath holds error and debug logs.
func logDirPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, appDirName, "logs")
	}
	return "logs"
}
