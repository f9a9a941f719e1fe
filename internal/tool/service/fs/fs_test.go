package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	fs := NewOSFileSystem()

	tests := []struct {
		name   string
		offset int64
		limit  int64
		want   string
	}{
		{"WholeFile", 0, 0, "0123456789"},
		{"Prefix", 0, 4, "0123"},
		{"Middle", 3, 4, "3456"},
		{"LimitPastEnd", 8, 100, "89"},
		{"OffsetPastEnd", 20, 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.ReadFileRange(path, tt.offset, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}

	t.Run("NegativeOffset", func(t *testing.T) {
		_, err := fs.ReadFileRange(path, -1, 0)
		assert.True(t, errors.Is(err, ErrInvalidOffset))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := fs.ReadFileRange(filepath.Join(dir, "nope"), 0, 0)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, fs.WriteFileAtomic(path, []byte("second"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_MissingParent(t *testing.T) {
	fs := NewOSFileSystem()
	err := fs.WriteFileAtomic(filepath.Join(t.TempDir(), "a", "b.txt"), []byte("x"), 0o644)

	var tmpErr *TempFileError
	assert.True(t, errors.As(err, &tmpErr))
}

func TestWriteFileAtomic_OntoDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o755))

	fs := NewOSFileSystem()
	err := fs.WriteFileAtomic(target, []byte("x"), 0o644)

	var renameErr *RenameError
	assert.True(t, errors.As(err, &renameErr))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be cleaned up")
}

func TestEnsureDirsAndListDir(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	require.NoError(t, fs.EnsureDirs(filepath.Join(dir, "pkg", "nested")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bb"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))

	infos, err := fs.ListDir(dir)
	require.NoError(t, err)
	require.Len(t, infos, 3)

	assert.Equal(t, "a.txt", infos[0].Name())
	assert.Equal(t, int64(1), infos[0].Size())
	assert.Equal(t, "b.txt", infos[1].Name())
	assert.Equal(t, "pkg", infos[2].Name())
	assert.True(t, infos[2].IsDir())
}
