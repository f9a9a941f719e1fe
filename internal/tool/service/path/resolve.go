package path

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver provides path resolution within a workspace boundary.
type Resolver struct {
	workspaceRoot string
}

// NewResolver creates a new path resolver for the given workspace.
// The root is cleaned but not otherwise canonicalised; use CanonicaliseRoot first.
func NewResolver(workspaceRoot string) *Resolver {
	if workspaceRoot != "" {
		workspaceRoot = filepath.Clean(workspaceRoot)
	}
	return &Resolver{
		workspaceRoot: workspaceRoot,
	}
}

// Root returns the workspace root.
func (r *Resolver) Root() string {
	return r.workspaceRoot
}

// CanonicaliseRoot canonicalises a workspace root path by making it absolute and resolving symlinks.
// Returns an error if the path doesn't exist or isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &WorkspaceRootError{Root: root, Cause: err}
	}

	// Resolve symlinks in the workspace root to get canonical path
	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &WorkspaceRootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &WorkspaceRootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &WorkspaceRootError{Root: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

// Abs resolves any path to absolute and validates it is within the workspace boundary.
// It joins relative paths onto the root, cleans "." and ".." segments and then requires
// the result to be the root itself or to have the root plus a separator as prefix.
// Symlinks are not followed.
func (r *Resolver) Abs(path string) (string, error) {
	if r.workspaceRoot == "" {
		return "", ErrWorkspaceRootNotSet
	}

	var abs string
	if filepath.IsAbs(path) {
		abs = filepath.Clean(path)
	} else {
		abs = filepath.Clean(filepath.Join(r.workspaceRoot, path))
	}

	if !Contains(r.workspaceRoot, abs) {
		return "", &ContainmentError{Path: path}
	}

	return abs, nil
}

// Rel resolves any path to relative to the workspace root and validates it is within the boundary.
// The root itself is returned as ".".
func (r *Resolver) Rel(path string) (string, error) {
	abs, err := r.Abs(path)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(r.workspaceRoot, abs)
	if err != nil {
		return "", &ContainmentError{Path: path}
	}

	return filepath.ToSlash(rel), nil
}

// Contains reports whether the cleaned absolute path abs equals root or is nested under it.
func Contains(root, abs string) bool {
	if abs == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(abs, prefix)
}
