package directory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cyclone1070/sandboxagent/internal/config"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/fs"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, p string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestListDirectory_Root(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.py"), "12345")
	writeFile(t, filepath.Join(root, "tests.py"), "1")
	writeFile(t, filepath.Join(root, "pkg", "calculator.py"), "abc")

	tool := NewListDirectoryTool(fs.NewOSFileSystem(), config.DefaultConfig())
	resp, err := tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 3)
	lines := strings.Split(resp.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "- main.py: file_size=5 bytes, is_dir=false", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "- pkg: file_size="))
	assert.True(t, strings.HasSuffix(lines[1], "bytes, is_dir=true"))
	assert.Equal(t, "- tests.py: file_size=1 bytes, is_dir=false", lines[2])
}

func TestListDirectory_Subdirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "render.py"), "xy")
	writeFile(t, filepath.Join(root, "pkg", "calculator.py"), "abc")

	tool := NewListDirectoryTool(fs.NewOSFileSystem(), config.DefaultConfig())
	resp, err := tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root, Directory: "pkg"})
	require.NoError(t, err)
	assert.Equal(t,
		"- calculator.py: file_size=3 bytes, is_dir=false\n- render.py: file_size=2 bytes, is_dir=false",
		resp.String())
}

func TestListDirectory_EmptyDirectory(t *testing.T) {
	root := t.TempDir()
	tool := NewListDirectoryTool(fs.NewOSFileSystem(), config.DefaultConfig())

	resp, err := tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root, Directory: "."})
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
	assert.Equal(t, "", resp.String())
}

func TestListDirectory_Gitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "*.log\n__pycache__/\n")
	writeFile(t, filepath.Join(root, "main.py"), "x")
	writeFile(t, filepath.Join(root, "debug.log"), "x")
	writeFile(t, filepath.Join(root, "__pycache__", "main.pyc"), "x")
	writeFile(t, filepath.Join(root, "pkg", "trace.log"), "x")
	writeFile(t, filepath.Join(root, "pkg", "calc.py"), "x")

	t.Run("Respected", func(t *testing.T) {
		tool := NewListDirectoryTool(fs.NewOSFileSystem(), config.DefaultConfig())

		resp, err := tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root})
		require.NoError(t, err)
		var names []string
		for _, e := range resp.Entries {
			names = append(names, e.Name)
		}
		assert.Equal(t, []string{".gitignore", "main.py", "pkg"}, names)

		resp, err = tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root, Directory: "pkg"})
		require.NoError(t, err)
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, "calc.py", resp.Entries[0].Name)
	})

	t.Run("Disabled", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Tools.RespectGitignore = false
		tool := NewListDirectoryTool(fs.NewOSFileSystem(), cfg)

		resp, err := tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root})
		require.NoError(t, err)
		assert.Len(t, resp.Entries, 5)
	})
}

func TestListDirectory_Errors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.py"), "x")
	tool := NewListDirectoryTool(fs.NewOSFileSystem(), config.DefaultConfig())

	t.Run("OutsideRoot", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root, Directory: "../"})
		assert.True(t, errors.Is(err, path.ErrOutsideWorkspace))
		assert.Equal(t, `cannot list "../" as it is outside the permitted working directory`, err.Error())
	})

	t.Run("AbsoluteOutsideRoot", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root, Directory: "/bin"})
		assert.True(t, errors.Is(err, path.ErrOutsideWorkspace))
	})

	t.Run("NotADirectory", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root, Directory: "main.py"})
		assert.Equal(t, `"main.py" is not a directory`, err.Error())
		assert.True(t, errors.Is(err, ErrNotADirectory))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := tool.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root, Directory: "nope"})
		assert.True(t, errors.Is(err, ErrNotADirectory))
	})

	t.Run("MatcherFailure", func(t *testing.T) {
		broken := NewListDirectoryTool(fs.NewOSFileSystem(), config.DefaultConfig())
		broken.newMatcher = func(string) (ignoreMatcher, error) { return nil, errors.New("bad gitignore") }

		_, err := broken.Run(context.Background(), &ListDirectoryRequest{WorkingDirectory: root})
		var listErr *ListDirError
		require.True(t, errors.As(err, &listErr))
		assert.Contains(t, err.Error(), "bad gitignore")
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := tool.Run(ctx, &ListDirectoryRequest{WorkingDirectory: root})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
