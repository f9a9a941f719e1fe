package script

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrPathRequired = errors.New("file_path is required")
	ErrNotFound     = errors.New("script not found")
	ErrNotAScript   = errors.New("not a script")
	ErrTimeout      = errors.New("script timed out")
)

type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %q not found", e.Path)
}
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

type NotAScriptError struct {
	Path   string
	Suffix string
}

func (e *NotAScriptError) Error() string {
	return fmt.Sprintf("%q is not a script (expected a %s file)", e.Path, e.Suffix)
}
func (e *NotAScriptError) Unwrap() error { return ErrNotAScript }

type TimeoutError struct {
	Path    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("script %q timed out after %s", e.Path, e.Timeout)
}
func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// ExecError is returned when the interpreter could not be launched or waited on.
type ExecError struct {
	Path  string
	Cause error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("error executing script %q: %v", e.Path, e.Cause)
}
func (e *ExecError) Unwrap() error { return e.Cause }
