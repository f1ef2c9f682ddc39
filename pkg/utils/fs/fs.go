package fs

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// MissingFileError is returned when a required input path does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

// IsMissingFile reports whether the cause of err is a MissingFileError.
func IsMissingFile(err error) bool {
	_, ok := errors.Cause(err).(*MissingFileError)
	return ok
}

// CheckFilesExist returns MissingFileError for the first path that does not exist.
func CheckFilesExist(paths ...string) error {
	for _, path := range paths {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return &MissingFileError{Path: path}
		}
		if err != nil {
			return errors.Wrapf(err, "cannot stat %q", path)
		}
	}
	return nil
}

// RemoveDirIfExists removes the directory tree at path. A missing path is not an error.
func RemoveDirIfExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(os.RemoveAll(path), "cannot remove %q", path)
}
