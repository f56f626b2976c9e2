package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todolist/internal/task"
)

var sortOrders = map[string]func(a, b task.Task) int{
	"deadline": task.ByDeadline,
	"name":     task.ByName,
	"id":       task.ByID,
}

func newListCommand(a *app) *cobra.Command {
	var (
		filter, tag, sortBy string
		ics                 bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks whose name contains --filter, or whose tags match --tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, ok := sortOrders[sortBy]
			if !ok {
				return fmt.Errorf("--sort %q: want deadline, name or id", sortBy)
			}

			var tasks []task.Task
			if tag != "" {
				var err error
				if tasks, err = a.registry.ListTagged(tag, cmp); err != nil {
					return err
				}
				tasks = filterNames(tasks, filter)
			} else {
				tasks = a.registry.ListTasks(filter, cmp)
			}

			if ics {
				fmt.Fprint(cmd.OutOrStdout(), task.BuildCalendarICS(tasks, a.clock.Now()))
				return nil
			}
			writeTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "case-sensitive substring of the task name")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "glob pattern matched against task tags")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "deadline", "sort order: deadline, name or id")
	cmd.Flags().BoolVar(&ics, "ics", false, "write the tasks as an iCalendar document")
	return cmd
}

func filterNames(tasks []task.Task, filter string) []task.Task {
	if filter == "" {
		return tasks
	}
	out := tasks[:0]
	for _, t := range tasks {
		if strings.Contains(t.Name, filter) {
			out = append(out, t)
		}
	}
	return out
}
