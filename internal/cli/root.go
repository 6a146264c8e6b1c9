// Package cli implements the cobra-based CLI commands for clockangle.
//
// The root command runs a fixture file through the angle calculator and
// prints the pass/fail report. The calc subcommand (calc.go) computes a
// single angle. This file defines the root command, global flags, and
// the exit-code handling shared by every command.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/clockangle/internal/fixture"
	"github.com/shinji-kodama/clockangle/internal/logging"
	"github.com/shinji-kodama/clockangle/internal/model"
	"github.com/shinji-kodama/clockangle/internal/runner"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput switches command output to JSON for machine consumption.
	jsonOutput bool

	// verbose enables DEBUG-level log lines on stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values for the fixture run.
type rootFlags struct {
	// file is the fixture path, relative to the working directory.
	file string

	// tolerance is the exclusive pass threshold in degrees.
	tolerance float64
}

// NewRootCommand creates and configures the root cobra command.
//
// Invoked with no arguments, the root command runs the default fixture
// file. Flags only override the path and tolerance.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "clockangle",
		Short: "Clock hand angle calculator and fixture runner",
		Long: `clockangle computes the smallest angle between the hour and minute hands
of an analog 12-hour clock and checks it against a table of expected cases.

Running without arguments reads clock_test_data.json from the current
directory and prints a pass/fail report. Fixture outcomes never change
the exit code.

Examples:
  clockangle
  clockangle --file cases.yaml
  clockangle --json
  clockangle calc 3 15`,

		Args: cobra.NoArgs,

		// We print errors ourselves (text or JSON based on --json).
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixtures(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().StringVarP(&flags.file, "file", "f", fixture.DefaultPath,
		"Fixture file (JSON, JSONC or YAML)")
	rootCmd.Flags().Float64Var(&flags.tolerance, "tolerance", runner.DefaultTolerance,
		"Largest difference in degrees still counted as a pass (exclusive)")

	rootCmd.AddCommand(NewCalcCommand())

	return rootCmd
}

// runFixtures validates flags and hands the fixture to the runner. Load
// problems are logged by the runner and do not produce an error here.
func runFixtures(cmd *cobra.Command, flags *rootFlags) error {
	tol := flags.tolerance
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid tolerance %v: must be a finite number greater than 0", tol))
	}

	r := runner.New(cmd.OutOrStdout(), newLogger(cmd),
		runner.WithTolerance(tol),
		runner.WithJSON(IsJSONOutput()),
	)
	r.Run(flags.file)
	return nil
}

// newLogger builds the stderr logger for a command invocation.
func newLogger(cmd *cobra.Command) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), verbose)
}

// Execute runs the root command and exits the process with the code
// derived from the returned error.
func Execute(rootCmd *cobra.Command) {
	if code := Run(rootCmd); code != model.ExitSuccess {
		os.Exit(int(code))
	}
}

// Run executes rootCmd, prints any error to the command's stderr, and
// returns the exit code without exiting. CLIError values carry their own
// code; other errors map to ExitGeneralError.
func Run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(rootCmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
		return cliErr.Code
	}

	printError(rootCmd.ErrOrStderr(), err.Error(), nil)
	return model.ExitGeneralError
}

// printError writes an error message in the format selected by --json.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// A marshal failure falls back to the text form below.
		if data, err := json.MarshalIndent(errObj, "", "  "); err == nil {
			fmt.Fprintln(w, string(data))
			return
		}
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
