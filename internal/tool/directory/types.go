package directory

import (
	"fmt"
	"strings"
)

// DirectoryEntry represents a single entry in a directory listing.
type DirectoryEntry struct {
	Name  string
	Size  int64
	IsDir bool
}

func (e DirectoryEntry) String() string {
	return fmt.Sprintf("- %s: file_size=%d bytes, is_dir=%t", e.Name, e.Size, e.IsDir)
}

type ListDirectoryRequest struct {
	WorkingDirectory string `mapstructure:"working_directory"`
	Directory        string `mapstructure:"directory"`
}

type ListDirectoryResponse struct {
	Path    string
	Entries []DirectoryEntry
}

// String renders one line per entry, sorted by name.
func (r *ListDirectoryResponse) String() string {
	lines := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
