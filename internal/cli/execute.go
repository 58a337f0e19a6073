package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Execute runs the punch command line with args and returns the process exit
// code. Output goes to stdout; errors and diagnostics go to stderr.
//
// Errors returned by commands already carry an exit code. Anything else comes
// from cobra's own argument and flag parsing and is reported as a usage error
// followed by the usage of the command that failed.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts *RootOptions) int {
	if opts == nil {
		opts = &RootOptions{}
	}

	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	root := newRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewUsageError("%v", err)
	})

	executed, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = NewUsageError("%v", err)
	}

	format := opts.Format
	if !isValidFormat(format) {
		format = "text"
	}
	formatter := &OutputFormatter{Format: format, Writer: stdout, ErrWriter: stderr}
	if ferr := formatter.Error(errorCode(exitErr), errorMessage(exitErr), nil); ferr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", exitErr)
	}

	if exitErr.Code == ExitUsage && format == "text" {
		if executed == nil {
			executed = root
		}
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, executed.UsageString())
	}

	return exitErr.Code
}
