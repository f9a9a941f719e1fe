package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/sandboxagent/internal/tool/helper/content"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// maxGitignoreSize caps how much of a .gitignore is parsed.
const maxGitignoreSize = 1 << 20

// GitignoreReadError is returned when .gitignore exists but cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }

type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}

// IgnoreMatcher hides entries matched by the .gitignore at the confinement root.
type IgnoreMatcher struct {
	matcher gitignore.Matcher
}

// NewIgnoreMatcher loads <root>/.gitignore. A missing file yields a matcher
// that ignores nothing.
func NewIgnoreMatcher(root string, fs fileSystem) (*IgnoreMatcher, error) {
	if root == "" {
		panic("root is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	gitignorePath := filepath.Join(root, ".gitignore")

	info, err := fs.Stat(gitignorePath)
	if err != nil || info.IsDir() {
		return &IgnoreMatcher{}, nil
	}

	data, err := fs.ReadFileRange(gitignorePath, 0, maxGitignoreSize)
	if err != nil {
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range content.SplitLines(string(data)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(trimmed, nil))
	}
	if len(patterns) == 0 {
		return &IgnoreMatcher{}, nil
	}

	return &IgnoreMatcher{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore reports whether a root-relative path is matched. isDir lets
// directory-only patterns such as "build/" apply.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m == nil || m.matcher == nil {
		return false
	}
	segments := splitPath(relativePath)
	if len(segments) == 0 {
		return false
	}
	return m.matcher.Match(segments, isDir)
}

// NoOpMatcher never ignores. Used when gitignore filtering is disabled.
type NoOpMatcher struct{}

func (NoOpMatcher) ShouldIgnore(string, bool) bool { return false }

func splitPath(path string) []string {
	var segments []string
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}
