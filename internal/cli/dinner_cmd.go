package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/recipebot/internal/cli/formatter"
	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/scoring"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultTop = 3

// emphasisFlag validates --boost at parse time.
type emphasisFlag struct {
	value domain.Emphasis
}

var _ pflag.Value = (*emphasisFlag)(nil)

func (f *emphasisFlag) String() string { return string(f.value) }
func (f *emphasisFlag) Type() string   { return "emphasis" }

func (f *emphasisFlag) Set(s string) error {
	e, err := scoring.ParseEmphasis(s)
	if err != nil {
		return err
	}
	f.value = e
	return nil
}

func emphasisNames() []string {
	names := make([]string, len(domain.ValidEmphases))
	for i, e := range domain.ValidEmphases {
		names[i] = string(e)
	}
	return names
}

type dinnerOptions struct {
	minutes int
	pinned  bool
	boost   emphasisFlag
	icsURL  string
	top     int
}

func newDinnerCmd(app *App) *cobra.Command {
	opts := dinnerOptions{}

	cmd := &cobra.Command{
		Use:   "dinner",
		Short: "Get tonight's recommendation",
		Long: `Rank the recipe catalog for tonight. Free time comes from --ics, then the
configured ics_url, then --time. Calendar failures fall back to --time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.pinned = cmd.Flags().Changed("time") && opts.icsURL == ""
			return runDinner(cmd, app, opts)
		},
	}

	cmd.Flags().IntVar(&opts.minutes, "time", app.defaultMinutes(), "Available minutes")
	cmd.Flags().Var(&opts.boost, "boost", "Prioritize one of: "+strings.Join(emphasisNames(), ", "))
	cmd.Flags().StringVar(&opts.icsURL, "ics", "", "Published ICS calendar URL")
	cmd.Flags().IntVar(&opts.top, "top", defaultTop, "Number of picks to show")
	_ = cmd.RegisterFlagCompletionFunc("boost", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return emphasisNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runDinner(cmd *cobra.Command, app *App, opts dinnerOptions) error {
	if opts.minutes <= 0 {
		return fmt.Errorf("--time must be positive, got %d", opts.minutes)
	}
	if opts.top <= 0 {
		return fmt.Errorf("--top must be positive, got %d", opts.top)
	}
	ctx := cmd.Context()

	provider, isCalendar := app.availabilityFor(opts.icsURL, opts.minutes, opts.pinned)
	stop := func() {}
	if isCalendar && app.interactive() {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Checking your calendar...")
	}
	avail, err := provider.FreeMinutesTonight(ctx)
	stop()
	if err != nil {
		return fmt.Errorf("reading availability: %w", err)
	}

	req := contract.NewDinnerRequest(avail.Minutes)
	req.CalendarSummary = avail.Summary
	req.Emphasis = opts.boost.value
	req.Limit = opts.top

	resp, err := app.Recommend.Recommend(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDinner(resp, cmd.Root().Name()))
	return nil
}
