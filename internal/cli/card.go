package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/punch/internal/report"
)

// CardOptions holds flags for the card command.
type CardOptions struct {
	*RootOptions
	Week  bool
	Month bool
}

// NewCardCommand creates the card command.
func NewCardCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CardOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "card",
		Short: "Display the time card",
		Long: `Display the time card.

Without flags, shows the most recent session: when it started, when it
ended (or that it is still running) and how long it lasted.

With --week or --mtd, shows the time worked on each UTC calendar day of
the current week (from Monday) or month, followed by the total. Sessions
crossing midnight count toward both days.

Examples:
  punch card
  punch card -w
  punch card --mtd --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return classify(runCard(cmd.Context(), opts, cmd))
		},
	}

	cmd.Flags().BoolVarP(&opts.Week, "week", "w", false, "summarize the current week by day")
	cmd.Flags().BoolVarP(&opts.Month, "mtd", "m", false, "summarize the month to date by day")
	cmd.MarkFlagsMutuallyExclusive("week", "mtd")

	return cmd
}

func runCard(ctx context.Context, opts *CardOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := opts.openSession(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.close()

	events, err := s.events(ctx)
	if err != nil {
		return err
	}
	now := s.engine.Now()

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr()}
	switch {
	case opts.Week:
		return formatter.Success(report.Summarize(events, report.Week, now))
	case opts.Month:
		return formatter.Success(report.Summarize(events, report.Month, now))
	default:
		card, err := report.LastSession(events, now)
		if err != nil {
			return err
		}
		return formatter.Success(card)
	}
}
