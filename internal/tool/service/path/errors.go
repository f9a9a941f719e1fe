package path

import (
	"errors"
	"fmt"
)

// -- Error Types --

// WorkspaceRootError is returned when the workspace root is invalid.
type WorkspaceRootError struct {
	Root  string
	Cause error
}

func (e *WorkspaceRootError) Error() string {
	return fmt.Sprintf("invalid workspace root %s: %v", e.Root, e.Cause)
}
func (e *WorkspaceRootError) Unwrap() error { return e.Cause }

// ContainmentError is returned when a path resolves outside the workspace root.
// Path is the caller-supplied path, not the resolved one. Op names the
// attempted action ("read", "execute") when the error reaches a tool caller.
type ContainmentError struct {
	Op   string
	Path string
}

func (e *ContainmentError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%q is outside the permitted working directory", e.Path)
	}
	return fmt.Sprintf("cannot %s %q as it is outside the permitted working directory", e.Op, e.Path)
}

// WithOp returns err with Op set when err is a ContainmentError, and err
// unchanged otherwise.
func WithOp(err error, op string) error {
	var cErr *ContainmentError
	if errors.As(err, &cErr) {
		return &ContainmentError{Op: op, Path: cErr.Path}
	}
	return err
}
func (e *ContainmentError) Unwrap() error { return ErrOutsideWorkspace }

// -- Sentinels --

var (
	ErrOutsideWorkspace    = errors.New("path is outside workspace root")
	ErrWorkspaceRootNotSet = errors.New("workspace root not set")
	ErrNotADirectory       = errors.New("not a directory")
)
