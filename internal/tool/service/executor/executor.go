package executor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/Cyclone1070/sandboxagent/internal/config"
)

// waitDelay is how long Wait keeps copying output after the child has exited.
const waitDelay = 2 * time.Second

// Result represents the outcome of a command execution.
type Result struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
	Duration  time.Duration
}

// OSCommandExecutor implements command execution using os/exec for real system commands.
type OSCommandExecutor struct {
	config *config.Config
}

// NewOSCommandExecutor creates a new OSCommandExecutor with injected config.
func NewOSCommandExecutor(cfg *config.Config) *OSCommandExecutor {
	if cfg == nil {
		panic("cfg is required")
	}
	return &OSCommandExecutor{config: cfg}
}

// RunWithTimeout executes a command in dir with stdin closed and stdout/stderr captured
// separately. When the timeout elapses (or ctx is cancelled) the child's process group is
// killed and ErrTimeout (or ctx.Err()) is returned together with whatever output was
// collected. A non-zero exit is reported through Result.ExitCode, not as an error.
func (f *OSCommandExecutor) RunWithTimeout(ctx context.Context, command []string, dir string, env []string, timeout time.Duration) (*Result, error) {
	if len(command) == 0 {
		return nil, os.ErrInvalid
	}

	// CommandContext is not used: the kill must reach the whole process group.
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = nil
	setProcessGroup(cmd)

	maxBytes := int(f.config.Tools.MaxCommandOutputSize)
	stdout := newCollector(maxBytes, binarySample)
	stderr := newCollector(maxBytes, binarySample)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// Bounds the wait for output copying once the child is gone, in case a
	// grandchild outside the group keeps the pipes open.
	cmd.WaitDelay = waitDelay

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var execErr error
	select {
	case err := <-done:
		execErr = err
	case <-ctx.Done():
		killProcessGroup(cmd)
		<-done
		execErr = ctx.Err()
	case <-timer.C:
		killProcessGroup(cmd)
		<-done
		execErr = ErrTimeout
	}

	res := &Result{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Truncated: stdout.Truncated() || stderr.Truncated(),
		Duration:  time.Since(start),
	}

	switch {
	case execErr == nil, errors.Is(execErr, exec.ErrWaitDelay):
		return res, nil
	case errors.Is(execErr, ErrTimeout) || errors.Is(execErr, context.Canceled) || errors.Is(execErr, context.DeadlineExceeded):
		res.ExitCode = -1
		return res, execErr
	default:
		var exitErr *exec.ExitError
		if errors.As(execErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, &CommandError{Cmd: command[0], Cause: execErr, Stage: "wait"}
	}
}
