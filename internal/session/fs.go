package session

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// EnsureDir creates dir and its parents when missing. It is a no-op for an
// existing directory and fails if dir exists as a file.
func EnsureDir(fs afero.Fs, dir string) (created bool, err error) {
	info, err := fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return false, err
	}
	return true, nil
}

// fileExists reports whether path is an existing regular file on fs.
func fileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
