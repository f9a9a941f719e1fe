package script

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/Cyclone1070/sandboxagent/internal/config"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/executor"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/path"
)

// Timeout bounds every script run. The whole process group is killed once
// it elapses.
const Timeout = 30 * time.Second

type commandExecutor interface {
	RunWithTimeout(ctx context.Context, command []string, dir string, env []string, timeout time.Duration) (*executor.Result, error)
}

type statter interface {
	Stat(path string) (os.FileInfo, error)
}

// RunScriptTool runs an interpreter script found under the confinement root.
type RunScriptTool struct {
	fs              statter
	commandExecutor commandExecutor
	config          *config.Config
	timeout         time.Duration
}

func NewRunScriptTool(fs statter, commandExecutor commandExecutor, cfg *config.Config) *RunScriptTool {
	if fs == nil {
		panic("fs is required")
	}
	if commandExecutor == nil {
		panic("commandExecutor is required")
	}
	if cfg == nil {
		panic("cfg is required")
	}
	return &RunScriptTool{
		fs:              fs,
		commandExecutor: commandExecutor,
		config:          cfg,
		timeout:         Timeout,
	}
}

// Run checks containment, existence and suffix in that order, then runs
// "<interpreter> <script> <args...>" with the root as working directory.
// A non-zero exit is reported in the response, not as an error.
func (t *RunScriptTool) Run(ctx context.Context, req *RunScriptRequest) (*RunScriptResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resolver := path.NewResolver(req.WorkingDirectory)
	abs, err := resolver.Abs(req.FilePath)
	if err != nil {
		return nil, path.WithOp(err, "execute")
	}

	if _, err := t.fs.Stat(abs); err != nil {
		return nil, &NotFoundError{Path: req.FilePath}
	}

	suffix := t.config.Tools.ScriptSuffix
	if !strings.HasSuffix(abs, suffix) {
		return nil, &NotAScriptError{Path: req.FilePath, Suffix: suffix}
	}

	command := append([]string{t.config.Tools.Interpreter, abs}, req.Args...)
	result, err := t.commandExecutor.RunWithTimeout(ctx, command, resolver.Root(), nil, t.timeout)
	if err != nil {
		if errors.Is(err, executor.ErrTimeout) {
			return nil, &TimeoutError{Path: req.FilePath, Timeout: t.timeout}
		}
		return nil, &ExecError{Path: req.FilePath, Cause: err}
	}

	return &RunScriptResponse{
		Stdout:    result.Stdout,
		Stderr:    result.Stderr,
		ExitCode:  result.ExitCode,
		Truncated: result.Truncated,
		Limit:     int(t.config.Tools.MaxCommandOutputSize),
	}, nil
}
