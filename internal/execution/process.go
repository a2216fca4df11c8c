package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"flakerun/internal/config"
)

// ProcessRunner launches an external command and waits for it to exit.
// A non-nil error means the process could not be launched or did not exit
// normally; exitCode is -1 in that case.
type ProcessRunner interface {
	Run(ctx context.Context, name string, args []string) (exitCode int, err error)
}

// ExecRunner runs commands with os/exec, streaming their output
type ExecRunner struct {
	Dir    string    // Working directory of the child
	Env    []string  // Extra environment on top of os.Environ()
	Stdout io.Writer // Child stdout, io.Discard when nil
	Stderr io.Writer // Child stderr, io.Discard when nil
}

// NewExecRunner creates an ExecRunner rooted at the project path
func NewExecRunner(cfg *config.Config, stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{
		Dir:    cfg.ProjectPath,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run executes the command synchronously
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), r.Env...)
	cmd.Stdout = writerOrDiscard(r.Stdout)
	cmd.Stderr = writerOrDiscard(r.Stderr)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		return exitErr.ExitCode(), nil
	}
	// Launch failures and signals (--gtest_break_on_failure traps)
	return -1, fmt.Errorf("%s: %w", name, err)
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
