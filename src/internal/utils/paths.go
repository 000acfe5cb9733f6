package utils

import "path/filepath"

// ResolvePath makes a path from a configuration file absolute by joining it
// with the directory the file lives in. Absolute paths and the empty path
// are returned unchanged apart from cleaning.
func ResolvePath(path, baseDir string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
