package utils

import (
	"os"

	"github.com/jutil-go/jutil/src/internal/errors"
)

// FileExists reports whether path can be stat'ed.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MkdirIfNotExists creates dir with mode 0700 unless something already
// exists at that path.
func MkdirIfNotExists(dir string) error {
	if FileExists(dir) {
		return nil
	}
	if err := os.Mkdir(dir, 0700); err != nil {
		return errors.NewIOError("could not create directory "+dir, err)
	}
	return nil
}

// WriteBinary creates or truncates path and writes data to it. The returned
// error wraps the *os.PathError so callers can recover the errno.
func WriteBinary(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.NewIOError("could not open output file "+path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return errors.NewIOError("could not write output file "+path, err)
	}
	if err := f.Close(); err != nil {
		return errors.NewIOError("could not close output file "+path, err)
	}
	return nil
}
