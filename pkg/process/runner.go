// Package process spawns build drivers and relays their exit status
package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/gomeson/gomeson/pkg/types"
)

// ExecRunner runs driver invocations as child processes. The child inherits
// the parent's stdout and stderr so driver output (including progress bars)
// appears live and unmodified.
type ExecRunner struct{}

// NewExecRunner creates a new exec-backed runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run spawns the invocation and blocks until it terminates. The child's
// exit status is returned as-is; a nonzero status is not an error. Errors
// are reserved for failing to start the process at all.
func (r *ExecRunner) Run(ctx context.Context, inv types.DriverInvocation) (int, error) {
	cmd := exec.CommandContext(ctx, inv.Driver, inv.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrSpawnFailed, inv.Driver, err)
	}

	err := cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("waiting for %s: %w", inv.Driver, err)
	}

	return 0, nil
}

// ExitError carries a driver's nonzero exit status up to the process
// boundary so it can be passed through bit-for-bit.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("build driver exited with status %d", e.Code)
}
