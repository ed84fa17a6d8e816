package warpcli

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"warp-manager/internal/platform"
)

// Runner starts a command and waits for it. Stdout is returned even when the
// command exits with a non-zero code; a non-zero exit is reported as *exec.ExitError.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout []byte, err error)
}

// timeoutRunner gives every invocation its own deadline.
type timeoutRunner struct {
	next    Runner
	timeout time.Duration
}

func (r timeoutRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	out, err := r.next.Run(ctx, name, args...)
	if err != nil {
		err = withContextError(ctx, err)
	}
	return out, err
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	platform.PrepareCommand(cmd)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) == 0 {
			exitErr.Stderr = stderr.Bytes()
		}
	}
	return stdout.Bytes(), err
}
