package task

import (
	"slices"
	"strings"
	"time"
)

// Task is a unit of work. ID is assigned by the caller and never changes once the
// task is stored; everything else may be replaced through Registry.Modify.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Deadline  time.Time `json:"deadline"`
	Tags      []string  `json:"tags,omitempty"`
	Completed bool      `json:"completed"`
}

// NewTask builds an incomplete task. No field is validated: empty ids and names and
// deadlines in the past are all accepted.
func NewTask(id, name string, deadline time.Time, tags []string) Task {
	return Task{
		ID:        id,
		Name:      name,
		Deadline:  deadline,
		Tags:      slices.Clone(tags),
		Completed: false,
	}
}

func (t *Task) SetCompleted(completed bool) {
	t.Completed = completed
}

// SetDeadline replaces the deadline. Earlier versions of this tracker ignored the
// argument and left the deadline untouched.
func (t *Task) SetDeadline(deadline time.Time) {
	t.Deadline = deadline
}

func (t Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// IsOverdue reports whether the deadline has passed at now and the task is still open.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Deadline.Before(now)
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	t.Tags = slices.Clone(t.Tags)
	return t
}

// Comparators for Registry.ListTasks.

func ByDeadline(a, b Task) int {
	return a.Deadline.Compare(b.Deadline)
}

func ByName(a, b Task) int {
	return strings.Compare(a.Name, b.Name)
}

func ByID(a, b Task) int {
	return strings.Compare(a.ID, b.ID)
}
