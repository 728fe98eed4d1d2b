package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetAbsolutePath returns path if it was absolute, otherwise joins it with baseDir.
// A leading "~/" is expanded to the user's home directory first.
func GetAbsolutePath(path, baseDir string) string {
	path = expandHome(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
