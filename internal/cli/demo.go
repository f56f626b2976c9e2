package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"todolist/internal/task"
)

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted add/modify/remove sequence and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), a)
		},
	}
}

func runDemo(out io.Writer, a *app) error {
	r := a.registry
	now := a.clock.Now()
	day := 24 * time.Hour

	r.Add(task.NewTask("1", "Task 1", now.Add(2*day), []string{"Tag1", "Tag2"}))
	r.Add(task.NewTask("2", "Task 2", now.Add(day), []string{"Tag2", "Tag3"}))
	r.Add(task.NewTask("3", "Task 3", now.Add(3*day), []string{"Tag1", "Tag3"}))

	done, ok := r.Get("1")
	if !ok {
		return fmt.Errorf("demo: task 1: %w", task.ErrNotFound)
	}
	done.SetCompleted(true)
	r.Modify(done)

	moved, ok := r.Get("2")
	if !ok {
		return fmt.Errorf("demo: task 2: %w", task.ErrNotFound)
	}
	moved.SetDeadline(now.Add(2 * day))
	r.Modify(moved)

	r.Remove("3")

	fmt.Fprintln(out, "Tasks:")
	writeTasks(out, r.ListTasks("Task", task.ByDeadline))

	end := a.clock.Now()
	fmt.Fprintln(out)
	writeStatistics(out, r.Statistics(end.Add(-day), end, end))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Activity:")
	writeEvents(out, r.ActivityLog(end.Add(-day), end.Add(time.Second)))
	return nil
}
