package adapter

import (
	"fmt"

	"github.com/Cyclone1070/sandboxagent/internal/config"
	provider "github.com/Cyclone1070/sandboxagent/internal/provider/models"
	"github.com/Cyclone1070/sandboxagent/internal/tool/directory"
	"github.com/Cyclone1070/sandboxagent/internal/tool/file"
	"github.com/Cyclone1070/sandboxagent/internal/tool/script"
)

// NewListDirectory creates the list_directory adapter.
func NewListDirectory(t *directory.ListDirectoryTool) Tool {
	return NewBaseAdapter(
		"list_directory",
		"Lists files in the specified directory along with their sizes, constrained to the working directory.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"directory": {
					Type:        "string",
					Description: "The directory to list files from, relative to the working directory. If not provided, lists files in the working directory itself.",
				},
			},
		},
		t.Run,
	)
}

// NewReadFile creates the read_file adapter.
func NewReadFile(t *file.ReadFileTool, cfg *config.Config) Tool {
	return NewBaseAdapter(
		"read_file",
		fmt.Sprintf("Reads and returns the content of a file, truncated at %d characters, constrained to the working directory.", cfg.Tools.MaxReadChars),
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"file_path": {
					Type:        "string",
					Description: "Path to the file to read, relative to the working directory.",
				},
			},
			Required: []string{"file_path"},
		},
		t.Run,
	)
}

// NewWriteFile creates the write_file adapter.
func NewWriteFile(t *file.WriteFileTool) Tool {
	return NewBaseAdapter(
		"write_file",
		"Writes content to a file, creating it and any parent directories if needed, constrained to the working directory.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"file_path": {
					Type:        "string",
					Description: "Path to the file to write, relative to the working directory.",
				},
				"content": {
					Type:        "string",
					Description: "The content to write to the file.",
				},
			},
			Required: []string{"file_path", "content"},
		},
		t.Run,
	)
}

// NewRunScript creates the run_script adapter.
func NewRunScript(t *script.RunScriptTool, cfg *config.Config) Tool {
	return NewBaseAdapter(
		"run_script",
		fmt.Sprintf("Executes a %s script within the working directory and returns the output from the interpreter.", cfg.Tools.ScriptSuffix),
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"file_path": {
					Type:        "string",
					Description: "Path to the script to execute, relative to the working directory.",
				},
				"args": {
					Type:        "array",
					Description: "Optional arguments to pass to the script.",
					Items:       &provider.PropertySchema{Type: "string"},
				},
			},
			Required: []string{"file_path"},
		},
		t.Run,
	)
}
