package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/sandboxagent/internal/config"
	"github.com/Cyclone1070/sandboxagent/internal/tool/helper/content"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/path"
)

// fileWriter defines the minimal filesystem operations needed for writing files.
type fileWriter interface {
	Stat(path string) (os.FileInfo, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
	EnsureDirs(path string) error
}

// WriteFileTool creates or overwrites a file under the confinement root.
type WriteFileTool struct {
	fileOps fileWriter
	config  *config.Config
}

func NewWriteFileTool(fileOps fileWriter, cfg *config.Config) *WriteFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &WriteFileTool{fileOps: fileOps, config: cfg}
}

// Run writes req.Content to req.FilePath, creating parent directories as
// needed. The write is atomic; an existing directory at the target is refused.
func (t *WriteFileTool) Run(ctx context.Context, req *WriteFileRequest) (*WriteFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	abs, err := path.NewResolver(req.WorkingDirectory).Abs(req.FilePath)
	if err != nil {
		return nil, path.WithOp(err, "write to")
	}

	data := []byte(req.Content)
	if maxSize := t.config.Tools.MaxFileSize; int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: %q (size %d, limit %d)", ErrFileTooLarge, req.FilePath, len(data), maxSize)
	}
	if content.IsBinaryContent(data) {
		return nil, fmt.Errorf("%w: %q", ErrBinaryFile, req.FilePath)
	}

	perm := os.FileMode(0o644)
	info, err := t.fileOps.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return nil, fmt.Errorf("cannot write to %q: %w", req.FilePath, ErrIsDirectory)
	case err == nil:
		perm = info.Mode().Perm()
	case !os.IsNotExist(err):
		return nil, &WriteError{Path: req.FilePath, Cause: err}
	}

	parentDir := filepath.Dir(abs)
	if err := t.fileOps.EnsureDirs(parentDir); err != nil {
		return nil, &EnsureDirsError{Path: req.FilePath, Cause: err}
	}

	if err := t.fileOps.WriteFileAtomic(abs, data, perm); err != nil {
		return nil, &WriteError{Path: req.FilePath, Cause: err}
	}

	return &WriteFileResponse{
		Path:         req.FilePath,
		AbsolutePath: abs,
		CharsWritten: content.RuneCount(req.Content),
	}, nil
}
