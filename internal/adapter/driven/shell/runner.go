// Package shell runs external commands, either capturing their output or
// attached to the terminal.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"go.uber.org/zap"
)

// CommandError reports a captured command that exited with a non-zero status.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.ExitCode, e.Stderr)
}

// Runner executes commands using os/exec.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger *zap.Logger
}

// NewRunner constructs a runner bound to the process standard streams.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Capture runs the command and returns its standard output.
func (r *Runner) Capture(ctx context.Context, name string, args ...string) (string, error) {
	commandLine := FormatCommand(append([]string{name}, args...))
	r.logger.Debug("capturing command", zap.String("command", commandLine))

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) {
			return stdout.String(), &CommandError{
				Command:  commandLine,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return "", fmt.Errorf("run %s: %w", commandLine, err)
	}

	r.logger.Debug("command finished", zap.String("command", commandLine), zap.Int("stdout_bytes", stdout.Len()))
	return stdout.String(), nil
}

// Interactive runs the command attached to the runner's streams and returns its exit code.
// A non-zero exit is not an error; failing to start the command is.
func (r *Runner) Interactive(ctx context.Context, name string, args ...string) (int, error) {
	commandLine := FormatCommand(append([]string{name}, args...))
	r.logger.Debug("running interactive command", zap.String("command", commandLine))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) {
			code := exitStatus(exitErr)
			r.logger.Debug("command exited", zap.String("command", commandLine), zap.Int("exit_code", code))
			return code, nil
		}
		return -1, fmt.Errorf("run %s: %w", commandLine, err)
	}

	return 0, nil
}

// exitStatus follows the shell convention of 128+signal for a child killed by a signal,
// so the status is never the -1 that ExitCode reports for that case.
func exitStatus(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return 1
}

// FormatCommand renders argv for display, quoting arguments that contain spaces.
func FormatCommand(argv []string) string {
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		if arg == "" || strings.ContainsAny(arg, " \t\"'") {
			arg = fmt.Sprintf("%q", arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
