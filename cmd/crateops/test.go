// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"

	"github.com/crateops/crateops/internal/issue"
	"github.com/crateops/crateops/internal/project"
	"github.com/crateops/crateops/internal/testmode"

	"github.com/spf13/cobra"
)

// testCmd runs the test command selected by the project's test.env file.
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the test command selected by test.env",
	Long: `Run the test command selected by the project's test.env file.

The file is read from the project root (the nearest ancestor directory
containing ` + project.ManifestName + `) and consulted for a single key:

  TEST_WITH=miri      run 'cargo miri test'
  TEST_WITH=cargo     run 'cargo test' (also the default)
  TEST_WITH=nextest   run 'cargo nextest run'
  TEST_WITH=nothing   skip testing and succeed

A missing file or key means 'cargo'. Any other value is a fatal
configuration error. The invoked command's exit code is forwarded verbatim.`,
	Args: cobra.NoArgs,
	RunE: runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	root, err := project.FindRoot(".")
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("locate project root").
			WithSuggestion("Run crateops test from inside a cargo project").
			Wrap(err).
			BuildError()
	}

	mode, err := testmode.LoadFile(filepath.Join(root, testmode.ConfigFileName))
	if err != nil {
		return issue.WrapWithOperation(err, "read test config")
	}

	runner := &testmode.Runner{
		Dir:    root,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	code, err := runner.Run(cmd.Context(), mode)
	if err != nil {
		return &ExitError{Code: code, Err: err}
	}
	if !code.IsSuccess() {
		// The underlying test command failed; forward its exit code without
		// wrapping or interpreting it.
		return &ExitError{Code: code}
	}
	return nil
}
