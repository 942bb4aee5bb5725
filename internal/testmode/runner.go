// SPDX-License-Identifier: MPL-2.0

package testmode

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/crateops/crateops/pkg/types"
)

// Runner executes the test command selected by a Mode.
type Runner struct {
	// Dir is the working directory for the invoked command. Empty means the
	// current directory.
	Dir string

	// Stdin, Stdout and Stderr are wired through to the invoked process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run dispatches the mode and returns the resulting exit code.
//
// ModeNothing invokes no process and reports success. An unrecognized mode
// returns an UnknownModeError alongside ExitFailure. For the three runner
// modes the invoked process's exit code is forwarded verbatim: a failing
// test suite is not an error from Run's perspective.
func (r *Runner) Run(ctx context.Context, mode Mode) (types.ExitCode, error) {
	if ok, errs := mode.IsValid(); !ok {
		return types.ExitFailure, errs[0]
	}

	if mode == ModeNothing {
		if r.Stdout != nil {
			fmt.Fprintln(r.Stdout, "tests skipped (TEST_WITH=nothing)")
		}
		return types.ExitSuccess, nil
	}

	argv := mode.Command()
	if r.Stdout != nil {
		fmt.Fprintf(r.Stdout, "running: %s\n", strings.Join(argv, " "))
	}
	return r.runArgv(ctx, argv)
}

// runArgv executes argv with inherited I/O and extracts the exit code.
func (r *Runner) runArgv(ctx context.Context, argv []string) (types.ExitCode, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return types.ExitCode(exitErr.ExitCode()), nil
		}
		return types.ExitFailure, fmt.Errorf("failed to execute %s: %w", argv[0], err)
	}

	return types.ExitSuccess, nil
}
