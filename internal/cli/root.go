package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/punch/internal/engine"
	"github.com/roach88/punch/internal/store"
)

// Version is reported by "punch --version".
var Version = "0.1.0"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	Store   string // overrides the configured backend when set
	LogPath string // overrides the configured log or database path when set

	// Clock allows overriding the wall clock (for testing).
	// If nil, defaults to engine.SystemClock.
	Clock engine.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the punch CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "punch",
		Short: "punch - a simple time tracker",
		Long: `A simple time tracker.

Punch in when you start working and punch out when you stop. The card
command shows the last session, or per-day totals for the current week
or month.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewUsageError("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Store != "" && !isValidBackend(opts.Store) {
				return NewUsageError("invalid store %q: must be one of %v", opts.Store, store.ValidBackends)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewUsageError("a command is required")
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Store, "store", "", "log backend (file|sqlite), overrides config")
	cmd.PersistentFlags().StringVar(&opts.LogPath, "log", "", "path to the punch log or database, overrides config")

	// Add subcommands
	cmd.AddCommand(NewInCommand(opts))
	cmd.AddCommand(NewOutCommand(opts))
	cmd.AddCommand(NewCardCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func isValidBackend(name string) bool {
	for _, b := range store.ValidBackends {
		if b == name {
			return true
		}
	}
	return false
}
