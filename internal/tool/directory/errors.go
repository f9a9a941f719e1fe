package directory

import (
	"errors"
	"fmt"
)

var ErrNotADirectory = errors.New("not a directory")

// NotADirectoryError is returned when the requested path is missing or is
// not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%q is not a directory", e.Path)
}
func (e *NotADirectoryError) Unwrap() error { return ErrNotADirectory }

type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("failed to list %q: %v", e.Path, e.Cause)
}
func (e *ListDirError) Unwrap() error { return e.Cause }
