package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/punch/internal/event"
)

// PunchResult is the output of punch in / punch out.
type PunchResult struct {
	Kind      event.Kind `json:"kind" yaml:"kind"`
	Timestamp time.Time  `json:"timestamp" yaml:"timestamp"`
}

func (r PunchResult) String() string {
	return fmt.Sprintf("Punched %s at %s UTC", r.Kind, r.Timestamp.UTC().Format(time.DateTime))
}

// NewInCommand creates the in command.
func NewInCommand(rootOpts *RootOptions) *cobra.Command {
	return newPunchCommand(rootOpts, event.In, "Punch in", `Punch in.

Records the start of a work session at the current UTC time. Fails if
you are already punched in.

Example:
  punch in`)
}

// NewOutCommand creates the out command.
func NewOutCommand(rootOpts *RootOptions) *cobra.Command {
	return newPunchCommand(rootOpts, event.Out, "Punch out", `Punch out.

Records the end of the current work session at the current UTC time.
Fails if you are not punched in.

Example:
  punch out`)
}

func newPunchCommand(rootOpts *RootOptions, kind event.Kind, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:           string(kind),
		Short:         short,
		Long:          long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return classify(runPunch(cmd.Context(), rootOpts, kind, cmd))
		},
	}
}

func runPunch(ctx context.Context, opts *RootOptions, kind event.Kind, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := opts.openSession(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.close()

	if _, err := s.events(ctx); err != nil {
		return err
	}

	var ev event.Event
	if kind == event.In {
		ev, err = s.engine.PunchIn(ctx)
	} else {
		ev, err = s.engine.PunchOut(ctx)
	}
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr()}
	return formatter.Success(PunchResult{Kind: ev.Kind, Timestamp: ev.Timestamp})
}
