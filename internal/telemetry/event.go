package telemetry

import (
	"fmt"
	"time"
)

// TimestampLayout is the fixed-width prefix used when an event is rendered as text.
const TimestampLayout = "2006-01-02T15:04:05"

type EventKind string

const (
	EventTaskAdded    EventKind = "added"
	EventTaskModified EventKind = "modified"
	EventTaskRemoved  EventKind = "removed"
)

// Event is one activity-log record. TaskName is the name the task had when the event happened.
type Event struct {
	ID        int       `json:"id"`
	Kind      EventKind `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	TaskID    string    `json:"task_id"`
	TaskName  string    `json:"task_name"`
}

// Message is the human-readable part of the event, e.g. "Task added: pay rent".
func (e Event) Message() string {
	return fmt.Sprintf("Task %s: %s", e.Kind, e.TaskName)
}

func (e Event) String() string {
	return e.Timestamp.Format(TimestampLayout) + " " + e.Message()
}
