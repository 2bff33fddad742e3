package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/seebinum/internal/convert"
	"github.com/roach88/seebinum/internal/engine"
)

// Execute runs cmd with process arguments and returns the exit code.
// Errors are printed to the command's error writer.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(PrepareArgs(cmd, args))
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return GetExitCode(err)
}

// newLogger returns a text logger on w: debug level when verbose, warnings
// only otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

func runSeebinum(cmd *cobra.Command, opts *RootOptions, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	out := cmd.OutOrStdout()
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  out,
		Verbose: opts.Verbose,
	}
	if opts.Format == "json" {
		formatter.TraceID = opts.traceIDs().Generate()
	}

	if len(args) == 0 {
		if opts.Format == "json" {
			_ = formatter.Error(ErrCodeNoArguments, "no numbers or keywords given", nil)
		} else {
			_ = cmd.Help()
		}
		return NewExitError(ExitFailure, "no arguments")
	}

	initial, err := opts.settings()
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidFlag, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}

	inv, err := ParseArgs(args, initial)
	if err != nil {
		var unknown *UnknownParameterError
		if errors.As(err, &unknown) {
			if opts.Format == "json" {
				_ = formatter.Error(ErrCodeUnknownParameter, err.Error(),
					map[string]string{"parameter": unknown.Param})
			} else {
				fmt.Fprintf(out, "Unknown parameter: %q\n", unknown.Param)
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			}
		}
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}
	logger.Debug("arguments parsed",
		"numbers", len(inv.Numbers),
		"steps", inv.Sequence.Len(),
		"type", inv.Type,
		"raw", inv.Raw)

	report, err := buildReport(inv, logger)
	if err != nil {
		logger.Warn("operation failed", "error", err)
		if opts.Format == "json" {
			_ = formatter.Error(errorCode(err), err.Error(), report)
		} else if werr := report.WriteText(out); werr != nil {
			return WrapExitError(ExitFailure, "write output", werr)
		}
		return WrapExitError(ExitFailure, "operation failed", err)
	}

	if err := formatter.Success(report); err != nil {
		return WrapExitError(ExitFailure, "write output", err)
	}
	return nil
}

// errorCode maps an operation failure to its JSON error code.
func errorCode(err error) string {
	var re *engine.RuntimeError
	if errors.As(err, &re) {
		return string(re.Code)
	}
	var ce *convert.Error
	if errors.As(err, &ce) {
		return string(ce.Code)
	}
	return ErrCodeOperationFailed
}
