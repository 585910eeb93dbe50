// Package process runs external programs for tiller.
//
// The editor and git are both reached through the Runner interface so the
// note pipeline can be exercised with a fake runner in tests.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes one external program invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Interactive attaches the process to the terminal instead of capturing output.
	Interactive bool
}

// String renders the command the way a shell user would type it.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result holds the outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes commands synchronously.
// Run returns a *NotFoundError when the program cannot be started and an
// *ExitStatusError when it ran but exited non-zero.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// NotFoundError reports that the program could not be located or started.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ExitStatusError reports a non-zero exit status.
type ExitStatusError struct {
	Command Command
	Result  Result
}

func (e *ExitStatusError) Error() string {
	msg := strings.TrimSpace(e.Result.Stderr)
	if msg == "" {
		msg = fmt.Sprintf("exit status %d", e.Result.ExitCode)
	}
	return fmt.Sprintf("%s: %s", e.Command, msg)
}

// Exec runs commands with os/exec.
type Exec struct {
	// Stdin, Stdout and Stderr are used for interactive commands.
	// Nil values default to the process's own standard streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (e Exec) Run(ctx context.Context, c Command) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	if c.Interactive {
		cmd.Stdin = orReader(e.Stdin, os.Stdin)
		cmd.Stdout = orWriter(e.Stdout, os.Stdout)
		cmd.Stderr = orWriter(e.Stderr, os.Stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	res := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, &ExitStatusError{Command: c, Result: res}
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, ctxErr
	}
	return res, &NotFoundError{Name: c.Name, Err: err}
}

func orReader(r io.Reader, fallback io.Reader) io.Reader {
	if r == nil {
		return fallback
	}
	return r
}

func orWriter(w io.Writer, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
