// Package root holds the lifesync command tree. Every command reads an
// export file into memory and runs the analytics over it, so the CLI works
// offline without the API.
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/lifesync-engine/internal/ui"
)

const Version = "0.1.0"

type options struct {
	dataPath string
	today    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "lifesync",
		Short:         "LifeSync analytics over an exported activity log",
		Long:          "lifesync reads a LifeSync export (categories, activities and daily logs) and prints schedules, completion stats, streaks and outcome projections.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&opts.dataPath, "data", "d", "lifesync.json", "path to the export file")
	cmd.PersistentFlags().StringVar(&opts.today, "today", "", "evaluate as of this date (YYYY-MM-DD, default: local today)")

	cmd.AddCommand(
		newRangeCmd(opts),
		newScheduleCmd(opts),
		newStatsCmd(opts),
		newOutcomesCmd(opts),
		newStreaksCmd(opts),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
