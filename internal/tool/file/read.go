package file

import (
	"context"
	"os"

	"github.com/Cyclone1070/sandboxagent/internal/config"
	"github.com/Cyclone1070/sandboxagent/internal/tool/helper/content"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/path"
)

// utf8MaxBytes bounds the bytes needed to hold one character.
const utf8MaxBytes = 4

// fileReader defines the minimal filesystem operations needed for reading files.
type fileReader interface {
	Stat(path string) (os.FileInfo, error)
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}

// ReadFileTool returns the content of a file under the confinement root.
type ReadFileTool struct {
	fileOps fileReader
	config  *config.Config
}

func NewReadFileTool(fileOps fileReader, cfg *config.Config) *ReadFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &ReadFileTool{fileOps: fileOps, config: cfg}
}

// Run reads at most tools.max_read_chars characters of req.FilePath.
// Longer files are cut and flagged as truncated.
func (t *ReadFileTool) Run(ctx context.Context, req *ReadFileRequest) (*ReadFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	abs, err := path.NewResolver(req.WorkingDirectory).Abs(req.FilePath)
	if err != nil {
		return nil, path.WithOp(err, "read")
	}

	info, err := t.fileOps.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &NotRegularFileError{Path: req.FilePath}
	}

	maxChars := t.config.Tools.MaxReadChars
	limit := int64(maxChars+1) * utf8MaxBytes
	if limit > t.config.Tools.MaxFileSize {
		limit = t.config.Tools.MaxFileSize
	}

	data, err := t.fileOps.ReadFileRange(abs, 0, limit)
	if err != nil {
		return nil, &ReadError{Path: req.FilePath, Cause: err}
	}
	if content.IsBinaryContent(data) {
		return nil, &ReadError{Path: req.FilePath, Cause: ErrBinaryFile}
	}

	text, truncated := content.TruncateRunes(string(data), maxChars)
	if !truncated && int64(len(data)) < info.Size() {
		truncated = true
	}

	return &ReadFileResponse{
		Content:   text,
		Path:      req.FilePath,
		Truncated: truncated,
		Limit:     maxChars,
	}, nil
}
