package directory

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/Cyclone1070/sandboxagent/internal/config"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/git"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/path"
)

// fileSystem defines the filesystem operations needed for listing.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}

type ignoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// ListDirectoryTool lists the immediate children of a directory under the
// confinement root.
type ListDirectoryTool struct {
	fs         fileSystem
	config     *config.Config
	newMatcher func(root string) (ignoreMatcher, error)
}

func NewListDirectoryTool(fs fileSystem, cfg *config.Config) *ListDirectoryTool {
	if fs == nil {
		panic("fs is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	t := &ListDirectoryTool{fs: fs, config: cfg}
	t.newMatcher = t.loadMatcher
	return t
}

func (t *ListDirectoryTool) loadMatcher(root string) (ignoreMatcher, error) {
	if !t.config.Tools.RespectGitignore {
		return git.NoOpMatcher{}, nil
	}
	return git.NewIgnoreMatcher(root, t.fs)
}

// Run lists req.Directory (the root when empty). Entries matched by the
// root .gitignore are left out.
func (t *ListDirectoryTool) Run(ctx context.Context, req *ListDirectoryRequest) (*ListDirectoryResponse, error) {
	dir := req.Directory
	if dir == "" {
		dir = "."
	}

	resolver := path.NewResolver(req.WorkingDirectory)
	abs, err := resolver.Abs(dir)
	if err != nil {
		return nil, path.WithOp(err, "list")
	}

	info, err := t.fs.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, &NotADirectoryError{Path: dir}
	}

	matcher, err := t.newMatcher(resolver.Root())
	if err != nil {
		return nil, &ListDirError{Path: dir, Cause: err}
	}

	infos, err := t.fs.ListDir(abs)
	if err != nil {
		return nil, &ListDirError{Path: dir, Cause: err}
	}

	entries := make([]DirectoryEntry, 0, len(infos))
	for _, fi := range infos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel, err := resolver.Rel(filepath.Join(abs, fi.Name()))
		if err != nil {
			return nil, &ListDirError{Path: dir, Cause: err}
		}
		if matcher.ShouldIgnore(rel, fi.IsDir()) {
			continue
		}
		entries = append(entries, DirectoryEntry{
			Name:  fi.Name(),
			Size:  fi.Size(),
			IsDir: fi.IsDir(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return &ListDirectoryResponse{Path: dir, Entries: entries}, nil
}
