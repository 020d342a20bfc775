package util

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/schemakit/schemakit/errors"
)

// FileExists returns true if the given path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileNotExists returns true if the given path does not exist.
func FileNotExists(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}

// IsFile returns true if the path points to a regular file.
func IsFile(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && !fileInfo.IsDir()
}

// IsDir returns true if the path points to a directory.
func IsDir(path string) bool {
	fileInfo, err := os.Stat(path)
	return err == nil && fileInfo.IsDir()
}

// CanonicalPath expands the given path (including `~`) and turns it into an absolute path rooted at
// basePath when it is relative.
func CanonicalPath(path string, basePath string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}

	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(basePath, expanded)
	}

	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}

	return filepath.ToSlash(absPath), nil
}

// EnsureDirectory creates the given directory, along with any missing parents, if it does not exist yet.
func EnsureDirectory(path string) error {
	if IsDir(path) {
		return nil
	}

	return errors.WithStackTrace(os.MkdirAll(path, 0o755))
}

// JoinPath is a filepath.Join that always returns forward slashes, so paths are rendered consistently
// across platforms in logs and error messages.
func JoinPath(elem ...string) string {
	return filepath.ToSlash(filepath.Join(elem...))
}
