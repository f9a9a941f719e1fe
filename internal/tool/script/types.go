package script

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/sandboxagent/internal/tool/helper/content"
)

type RunScriptRequest struct {
	WorkingDirectory string   `mapstructure:"working_directory"`
	FilePath         string   `mapstructure:"file_path"`
	Args             []string `mapstructure:"args"`
}

func (r *RunScriptRequest) Validate() error {
	if r.FilePath == "" {
		return ErrPathRequired
	}
	return nil
}

// RunScriptResponse holds what the child process produced. Truncated is set
// when either stream went past Limit bytes.
type RunScriptResponse struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
	Limit     int
}

// String composes the report handed back to the model: the non-empty
// streams and a non-zero exit code, one section per line, followed by a
// truncation notice when output was cut.
func (r *RunScriptResponse) String() string {
	var sections []string
	if r.Stdout != "" {
		sections = append(sections, "STDOUT: "+r.Stdout)
	}
	if r.Stderr != "" {
		sections = append(sections, "STDERR: "+r.Stderr)
	}
	if r.ExitCode != 0 {
		sections = append(sections, fmt.Sprintf("Process exited with code %d", r.ExitCode))
	}
	if len(sections) == 0 {
		return "No output produced."
	}
	if r.Truncated {
		sections = append(sections, content.OutputTruncatedNotice(r.Limit))
	}
	return strings.Join(sections, "\n")
}
