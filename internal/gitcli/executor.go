package gitcli

import (
	"bytes"
	"context"
	"os/exec"
)

// Executor runs an external command and returns its captured output.
type Executor interface {
	// Run executes name with args in dir. The process is killed when ctx is done.
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, err error)
}

// ExecExecutor is the default Executor backed by os/exec.
type ExecExecutor struct{}

// Run implements Executor.
func (ExecExecutor) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}
