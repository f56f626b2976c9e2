package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newLogCommand(a *app) *cobra.Command {
	var (
		from, to string
		counts   bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print activity-log entries stamped inside (--from, --to)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.clock.Now()
			start, end, err := window(from, to, now.Add(-24*time.Hour), now.Add(time.Second))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if counts {
				c := a.registry.ActivityCounts(start, end)
				fmt.Fprintf(out, "Added: %d\nModified: %d\nRemoved: %d\n", c.Added, c.Modified, c.Removed)
				return nil
			}
			writeEvents(out, a.registry.ActivityLog(start, end))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "window start, RFC 3339 (exclusive)")
	cmd.Flags().StringVar(&to, "to", "", "window end, RFC 3339 (exclusive)")
	cmd.Flags().BoolVar(&counts, "counts", false, "print per-kind totals instead of entries")
	return cmd
}
