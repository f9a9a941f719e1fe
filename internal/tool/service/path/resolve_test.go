package path

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbs(t *testing.T) {
	workspaceRoot := "/workspace"
	resolver := NewResolver(workspaceRoot)

	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{
			name:     "relative path within workspace",
			input:    "pkg/calculator.py",
			expected: "/workspace/pkg/calculator.py",
		},
		{
			name:     "absolute path within workspace",
			input:    "/workspace/pkg/calculator.py",
			expected: "/workspace/pkg/calculator.py",
		},
		{
			name:     "path with dots within workspace",
			input:    "pkg/../pkg/./render.py",
			expected: "/workspace/pkg/render.py",
		},
		{
			name:     "workspace root",
			input:    ".",
			expected: "/workspace",
		},
		{
			name:     "empty path is the root",
			input:    "",
			expected: "/workspace",
		},
		{
			name:     "dot dot that stays inside",
			input:    "pkg/..",
			expected: "/workspace",
		},
		{
			name:  "escape attempt via parent dots",
			input: "../../../etc/passwd",
			err:   ErrOutsideWorkspace,
		},
		{
			name:  "single parent",
			input: "..",
			err:   ErrOutsideWorkspace,
		},
		{
			name:  "absolute path outside workspace",
			input: "/etc/passwd",
			err:   ErrOutsideWorkspace,
		},
		{
			name:  "prefix match but not child",
			input: "/workspacefoo/bar",
			err:   ErrOutsideWorkspace,
		},
		{
			name:  "sibling via relative dots",
			input: "../workspacefoo/bar",
			err:   ErrOutsideWorkspace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abs, err := resolver.Abs(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if abs != tt.expected {
				t.Errorf("expected abs %q, got %q", tt.expected, abs)
			}
		})
	}
}

func TestAbs_ContainmentErrorCarriesInput(t *testing.T) {
	resolver := NewResolver("/workspace")

	_, err := resolver.Abs("../secret.txt")

	var cErr *ContainmentError
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, "../secret.txt", cErr.Path)
	assert.Contains(t, err.Error(), "outside the permitted working directory")
}

func TestWithOp(t *testing.T) {
	resolver := NewResolver("/workspace")
	_, err := resolver.Abs("../main.py")

	err = WithOp(err, "execute")
	assert.Equal(t, `cannot execute "../main.py" as it is outside the permitted working directory`, err.Error())
	assert.True(t, errors.Is(err, ErrOutsideWorkspace))

	other := errors.New("boom")
	assert.Same(t, other, WithOp(other, "read"))
	assert.Nil(t, WithOp(nil, "read"))
}

// TestAbs_RejectsEveryEscape checks that any path whose cleaned form leaves the root is rejected,
// over a grid of ".."-laden inputs.
func TestAbs_RejectsEveryEscape(t *testing.T) {
	root := "/srv/root"
	resolver := NewResolver(root)

	segments := []string{"..", ".", "a", "b", "root", "srv", "rootx"}
	var inputs []string
	for _, s1 := range segments {
		for _, s2 := range segments {
			for _, s3 := range segments {
				for _, s4 := range segments {
					inputs = append(inputs, strings.Join([]string{s1, s2, s3, s4}, "/"))
				}
			}
		}
	}

	for _, in := range inputs {
		canonical := filepath.Clean(filepath.Join(root, in))
		inside := canonical == root || strings.HasPrefix(canonical, root+"/")

		abs, err := resolver.Abs(in)
		if inside {
			assert.NoError(t, err, "input %q", in)
			assert.Equal(t, canonical, abs, "input %q", in)
		} else {
			assert.ErrorIs(t, err, ErrOutsideWorkspace, "input %q resolved to %q", in, canonical)
			assert.Empty(t, abs, "input %q", in)
		}
	}
}

func TestAbs_RootNotSet(t *testing.T) {
	_, err := NewResolver("").Abs("a.txt")
	assert.ErrorIs(t, err, ErrWorkspaceRootNotSet)
}

func TestRel(t *testing.T) {
	workspaceRoot := "/workspace"
	resolver := NewResolver(workspaceRoot)

	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{
			name:     "relative path within workspace",
			input:    "pkg/calculator.py",
			expected: "pkg/calculator.py",
		},
		{
			name:     "absolute path within workspace",
			input:    "/workspace/pkg/calculator.py",
			expected: "pkg/calculator.py",
		},
		{
			name:     "workspace root",
			input:    "/workspace",
			expected: ".",
		},
		{
			name:  "escape attempt",
			input: "/etc/passwd",
			err:   ErrOutsideWorkspace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, err := resolver.Rel(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if rel != tt.expected {
				t.Errorf("expected rel %q, got %q", tt.expected, rel)
			}
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("/a", "/a"))
	assert.True(t, Contains("/a", "/a/b"))
	assert.False(t, Contains("/a", "/ab"))
	assert.False(t, Contains("/a/b", "/a"))
	assert.True(t, Contains("/", "/etc"))
}

func TestCanonicaliseRoot(t *testing.T) {
	resolvedTmpDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	t.Run("valid directory", func(t *testing.T) {
		got, err := CanonicaliseRoot(resolvedTmpDir)
		require.NoError(t, err)
		assert.Equal(t, resolvedTmpDir, got)
	})

	t.Run("symlinked root is resolved", func(t *testing.T) {
		link := filepath.Join(resolvedTmpDir, "link")
		target := filepath.Join(resolvedTmpDir, "target")
		require.NoError(t, os.Mkdir(target, 0o755))
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		got, err := CanonicaliseRoot(link)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("non-existent path", func(t *testing.T) {
		_, err := CanonicaliseRoot(filepath.Join(resolvedTmpDir, "non-existent"))
		var rootErr *WorkspaceRootError
		assert.True(t, errors.As(err, &rootErr))
	})

	t.Run("file instead of directory", func(t *testing.T) {
		tmpFile := filepath.Join(resolvedTmpDir, "file.txt")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0o644))

		_, err := CanonicaliseRoot(tmpFile)
		assert.ErrorIs(t, err, ErrNotADirectory)
	})
}
