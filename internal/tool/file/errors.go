package file

import (
	"errors"
	"fmt"
)

var (
	ErrPathRequired   = errors.New("file_path is required")
	ErrBinaryFile     = errors.New("file is binary")
	ErrFileTooLarge   = errors.New("file too large")
	ErrIsDirectory    = errors.New("path is a directory")
	ErrNotRegularFile = errors.New("file not found or is not a regular file")
)

// NotRegularFileError is returned by read_file for a missing path or a
// path that is not a regular file.
type NotRegularFileError struct {
	Path string
}

func (e *NotRegularFileError) Error() string {
	return fmt.Sprintf("file not found or is not a regular file: %q", e.Path)
}
func (e *NotRegularFileError) Unwrap() error { return ErrNotRegularFile }

type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }

type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %q: %v", e.Path, e.Cause)
}
func (e *WriteError) Unwrap() error { return e.Cause }

type EnsureDirsError struct {
	Path  string
	Cause error
}

func (e *EnsureDirsError) Error() string {
	return fmt.Sprintf("failed to create parent directories for %q: %v", e.Path, e.Cause)
}
func (e *EnsureDirsError) Unwrap() error { return e.Cause }
