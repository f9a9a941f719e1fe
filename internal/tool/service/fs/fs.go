package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OSFileSystem implements the filesystem operations the tools need on top of
// the local OS filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for a path (follows symlinks).
func (o *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFileRange reads up to limit bytes starting at offset.
// A limit of 0 reads to the end of the file.
func (o *OSFileSystem) ReadFileRange(path string, offset, limit int64) ([]byte, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if offset >= info.Size() {
		return []byte{}, nil
	}

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	var r io.Reader = file
	if limit > 0 {
		r = io.LimitReader(file, limit)
	}
	return io.ReadAll(r)
}

// WriteFileAtomic writes content through a temp file in the target directory
// followed by a rename, so readers never observe a partial file.
func (o *OSFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return &TempFileError{Dir: dir, Cause: err}
	}
	tmpPath := tmpFile.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return &TempWriteError{Path: tmpPath, Cause: err}
	}
	if err := tmpFile.Sync(); err != nil {
		return &TempWriteError{Path: tmpPath, Cause: err}
	}
	if err := tmpFile.Chmod(perm); err != nil {
		return &ChmodError{Path: tmpPath, Mode: perm, Cause: err}
	}
	if err := tmpFile.Close(); err != nil {
		return &TempWriteError{Path: tmpPath, Cause: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return &RenameError{Old: tmpPath, New: path, Cause: err}
	}
	committed = true
	return nil
}

// EnsureDirs creates a directory and any missing parents.
func (o *OSFileSystem) EnsureDirs(path string) error {
	return os.MkdirAll(path, 0o755)
}

// ListDir returns file info for every entry of a directory, sorted by name.
func (o *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info.
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
