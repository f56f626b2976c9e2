package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func newStatsCommand(a *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count tasks whose deadline falls inside (--from, --to)",
		Long: `Count tasks whose deadline falls strictly inside (--from, --to).

TasksAdded is the number of such tasks; TasksCompleted and TasksOverdue are
subsets of it. Overdue is judged against the current time, not the window.
The window defaults to the 24 hours before now through 7 days after.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.clock.Now()
			start, end, err := window(from, to, now.Add(-24*time.Hour), now.Add(7*24*time.Hour))
			if err != nil {
				return err
			}
			writeStatistics(cmd.OutOrStdout(), a.registry.Statistics(start, end, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "window start, RFC 3339 (exclusive)")
	cmd.Flags().StringVar(&to, "to", "", "window end, RFC 3339 (exclusive)")
	return cmd
}
