package utils

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolvePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("paths below are POSIX")
	}

	tests := []struct {
		name    string
		path    string
		baseDir string
		want    string
	}{
		{"absolute", "/test/file.txt", "/base/dir", "/test/file.txt"},
		{"absolute is cleaned", "/test//x/../file.txt", "/base/dir", "/test/file.txt"},
		{"relative", "relative/file.txt", "/base/dir", "/base/dir/relative/file.txt"},
		{"dot", "./file.txt", "/base/dir", "/base/dir/file.txt"},
		{"double dot", "../file.txt", "/base/dir", "/base/file.txt"},
		{"empty path", "", "/base/dir", ""},
		{"empty base", "file.txt", "", "file.txt"},
		{"messy", "a//b/../c/./file.txt", "/base//dir", "/base/dir/a/c/file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePath(tt.path, tt.baseDir); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestResolvePath_Separators(t *testing.T) {
	got := ResolvePath(filepath.Join("subdir", "file.txt"), filepath.Join("/", "base"))
	want := filepath.Join("/", "base", "subdir", "file.txt")

	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}
