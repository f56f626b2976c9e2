package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"todolist/internal/task"
	"todolist/internal/telemetry"
)

func writeTasks(out io.Writer, tasks []task.Task) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, t := range tasks {
		status := "open"
		if t.Completed {
			status = "done"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name, t.Deadline.Format(telemetry.TimestampLayout), status, strings.Join(t.Tags, ","))
	}
	w.Flush()
}

func writeStatistics(out io.Writer, s task.Statistics) {
	fmt.Fprintf(out, "Tasks Added: %d\n", s.TasksAdded)
	fmt.Fprintf(out, "Tasks Completed: %d\n", s.TasksCompleted)
	fmt.Fprintf(out, "Tasks Overdue: %d\n", s.TasksOverdue)
}

func writeEvents(out io.Writer, events []telemetry.Event) {
	for _, e := range events {
		fmt.Fprintln(out, e.String())
	}
}
