// Package main provides the netgen CLI entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command tree
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Exit code 1 and a user-facing message on any failure
//   - Performance Notes: Fast startup, minimal initialization
//
// Usage:
//
//	netgen [command] [flags]
package main

import (
	stderrors "errors"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go.eggybyte.com/netgen/internal/log"
	"go.eggybyte.com/netgen/internal/logx"
	"go.eggybyte.com/netgen/internal/ui"
	"go.eggybyte.com/netgen/internal/version"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	verbose    bool
	jsonOutput bool
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "netgen",
		Short: "ASP.NET Web API project generator",
		Long: `netgen turns a project descriptor into a complete .NET Framework Web API
solution: solution and project manifests, configuration, models, an Entity
Framework data layer, services, controllers, MSTest tests and documentation.

Descriptors are YAML, JSON or CUE files. Run "netgen examples" for presets.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version.GetVersionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.SetVerbose(opts.verbose)
			ui.SetJSONOutput(opts.jsonOutput)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "V", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newValidateCmd(),
		newExamplesCmd(),
		newVersionCmd(),
	)
	return cmd
}

// newLogger builds the engine logger. Engine logs go to the error stream so
// that JSON results on stdout stay parseable.
func newLogger(cmd *cobra.Command, opts *rootOptions) log.Logger {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	format := logx.FormatLogfmt
	if opts.jsonOutput {
		format = logx.FormatJSON
	}
	return logx.New(
		logx.WithWriter(cmd.ErrOrStderr()),
		logx.WithLevel(level),
		logx.WithFormat(format),
		logx.WithColor(!color.NoColor),
	)
}

// reportedError marks a failure whose details were already shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// execute runs the command tree and returns the process exit code.
func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var r *reportedError
		if !stderrors.As(err, &r) {
			ui.Error("Command failed: %v", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd(), os.Args[1:]))
}
