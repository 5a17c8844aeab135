package root

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/analytics"
	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
	"github.com/comitanigiacomo/lifesync-engine/internal/ui"
)

func rangeNames() string {
	names := make([]string, len(analytics.RangeKinds))
	for i, k := range analytics.RangeKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func newRangeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "range <kind>",
		Short: "List the dates of a range (" + rangeNames() + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := analytics.ParseRangeKind(args[0])
			if err != nil {
				return err
			}
			today, err := resolveToday(opts.today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dates := analytics.RangeDates(kind, today)

			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, fmt.Sprintf("%s (%d days)", kind, len(dates))))
			for _, d := range dates {
				fmt.Fprintln(out, "- "+d)
			}
			return nil
		},
	}
}

func newScheduleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Show activities along the day, grouped by period",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := openWorkspace(ctx, opts.dataPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			periods, err := ws.stats.Schedule(ctx, ws.user)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Daily schedule"))
			if len(periods) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no activities"))
				return nil
			}

			for _, p := range periods {
				fmt.Fprintln(out, ui.H2.Render(p.Label))
				for _, a := range p.Activities {
					at := "--:--"
					if a.IsTimeBound() {
						at = *a.ScheduledTime
					}
					fmt.Fprintf(out, "  %s  %s %s\n", at, a.Name, ui.Muted.Render(fmt.Sprintf("(%.1fh)", a.DailyHours)))
				}
			}
			return nil
		},
	}
}

func printReports(out io.Writer, title string, reports []domain.ActivityReport) {
	if len(reports) == 0 {
		return
	}
	fmt.Fprintln(out, ui.H2.Render(title))
	for _, r := range reports {
		fmt.Fprintf(out, "  %s %s %s\n", ui.RateText(r.Rate), ui.Bar(r.Rate), r.Name)
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	var rangeFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Completion rates per category and activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := analytics.ParseRangeKind(rangeFlag)
			if err != nil {
				return err
			}
			today, err := resolveToday(opts.today)
			if err != nil {
				return err
			}

			ctx := context.Background()
			ws, err := openWorkspace(ctx, opts.dataPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cats, err := ws.stats.CategoryAnalytics(ctx, ws.user, kind, today)
			if err != nil {
				return err
			}
			acts, err := ws.stats.ActivityAnalytics(ctx, ws.user, kind, "", today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, fmt.Sprintf("Stats for %s (%s .. %s)", kind, cats.Dates.First(), cats.Dates.Last())))

			fmt.Fprintln(out, ui.H2.Render("Categories"))
			for _, c := range cats.Categories {
				fmt.Fprintf(out, "  %s %s %s %s\n", ui.RateText(c.Rate), ui.Bar(c.Rate), c.Name, ui.TrendText(c.Trend))
			}

			printReports(out, "Performing well", acts.PerformingWell)
			printReports(out, "Needs attention", acts.NeedsAttention)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rangeFlag, "range", "r", string(analytics.RangeCurrentWeek), "range: "+rangeNames())
	return cmd
}

func newOutcomesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "outcomes",
		Short: "Project career, happiness and longevity outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := resolveToday(opts.today)
			if err != nil {
				return err
			}

			ctx := context.Background()
			ws, err := openWorkspace(ctx, opts.dataPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			m, err := ws.stats.Outcomes(ctx, ws.user, today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCrystal, "Outcome projection"))
			fmt.Fprintln(out, ui.LabelValue("Compliance", fmt.Sprintf("%d%%", m.Meta.ComplianceRate)))
			fmt.Fprintln(out, ui.LabelValue("Hours tracked", fmt.Sprintf("%.1fh/day", m.Meta.TotalHoursTracked)))

			for _, h := range []domain.Horizon{domain.Horizon1Year, domain.Horizon5Year, domain.Horizon10Year} {
				fmt.Fprintln(out, ui.H2.Render(string(h)))
				for _, d := range domain.Dimensions {
					score := m.Matrix[h][d]
					info := analytics.DimensionInfo(d)
					level := analytics.ScoreLevel(score)
					fmt.Fprintf(out, "  %s %s %s %s\n", info.Icon, ui.Score(score, level.Color), info.Label, ui.Muted.Render(level.Label))
				}
			}
			return nil
		},
	}
}

func newStreaksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "streaks",
		Short: "Current and longest streak per activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := resolveToday(opts.today)
			if err != nil {
				return err
			}

			ctx := context.Background()
			ws, err := openWorkspace(ctx, opts.dataPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			dash, err := ws.stats.Dashboard(ctx, ws.user, today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFire, "Streaks as of "+dash.Today))
			fmt.Fprintln(out, ui.LabelValue("This week", fmt.Sprintf("%d/%d (%d%%)", dash.Consistency.Completed, dash.Consistency.Possible, dash.Consistency.CompletionRate)))
			fmt.Fprintln(out, ui.LabelValue("Hours left today", fmt.Sprintf("%.1f", dash.RemainingHours)))

			for _, s := range dash.Streaks {
				fmt.Fprintf(out, "  %-24s current %3d  longest %3d\n", s.Name, s.Current, s.Longest)
			}
			return nil
		},
	}
}
