// Package processtest provides a recording process.Runner for tests.
package processtest

import (
	"context"
	"slices"

	"github.com/gorewood/tiller/internal/process"
)

// Fake records every command it is asked to run and answers from Handle.
type Fake struct {
	Calls []process.Command
	// Handle decides the outcome of each call. Nil means every command succeeds.
	Handle func(cmd process.Command) (process.Result, error)
}

// Run implements process.Runner.
func (f *Fake) Run(_ context.Context, cmd process.Command) (process.Result, error) {
	cmd.Args = slices.Clone(cmd.Args)
	f.Calls = append(f.Calls, cmd)
	if f.Handle == nil {
		return process.Result{}, nil
	}
	return f.Handle(cmd)
}

// FailOn returns a Handle that exits with status 1 for the given subcommand
// (the first argument) and succeeds otherwise.
func FailOn(subcommand string, stderr string) func(process.Command) (process.Result, error) {
	return func(cmd process.Command) (process.Result, error) {
		if len(cmd.Args) > 0 && cmd.Args[0] == subcommand {
			res := process.Result{ExitCode: 1, Stderr: stderr}
			return res, &process.ExitStatusError{Command: cmd, Result: res}
		}
		return process.Result{}, nil
	}
}

// Argv returns the recorded calls as name+args slices.
func (f *Fake) Argv() [][]string {
	out := make([][]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, append([]string{c.Name}, c.Args...))
	}
	return out
}
