package warpcli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrToolNotInstalled means warp-cli could not be invoked at all.
	ErrToolNotInstalled = errors.New("warp-cli is not installed")
	// ErrToolCommandFailed means warp-cli ran but the subcommand failed.
	ErrToolCommandFailed = errors.New("warp-cli command failed")
)

// CommandError describes a failed warp-cli subcommand.
// ExitCode is -1 when the process did not exit normally (spawn failure, timeout).
type CommandError struct {
	Command  string
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("warp-cli %s failed", e.Command)
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" (exit code %d)", e.ExitCode)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

func (e *CommandError) Is(target error) bool { return target == ErrToolCommandFailed }

func newCommandError(command string, stdout []byte, err error) *CommandError {
	ce := &CommandError{Command: command, ExitCode: -1, Output: string(stdout), Err: err}
	var coder exitCoder
	if errors.As(err, &coder) {
		ce.ExitCode = coder.ExitCode()
	}
	var exitErr *exec.ExitError
	if ce.Output == "" && errors.As(err, &exitErr) {
		ce.Output = string(exitErr.Stderr)
	}
	return ce
}

// exitCoder is implemented by *exec.ExitError. ExitCode is -1 for a killed process.
type exitCoder interface {
	ExitCode() int
}

// isExitError reports whether the process ran and exited on its own.
func isExitError(err error) bool {
	var coder exitCoder
	if !errors.As(err, &coder) {
		return false
	}
	return coder.ExitCode() >= 0
}

// withContextError attributes a failure to the context when it expired or was cancelled.
func withContextError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w (%v)", ctxErr, err)
	}
	return err
}
