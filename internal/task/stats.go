package task

// Statistics summarises the tasks whose deadline falls inside a window.
// TasksAdded counts tasks with an in-window deadline, not tasks created in the window:
// no creation time is tracked.
type Statistics struct {
	TasksAdded     int `json:"tasks_added"`
	TasksCompleted int `json:"tasks_completed"`
	TasksOverdue   int `json:"tasks_overdue"`
}

// Map returns the statistics keyed the way reports print them.
func (s Statistics) Map() map[string]int {
	return map[string]int{
		"TasksAdded":     s.TasksAdded,
		"TasksCompleted": s.TasksCompleted,
		"TasksOverdue":   s.TasksOverdue,
	}
}
