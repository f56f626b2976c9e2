package telemetry

import "time"

// Log is an append-only, chronological sequence of events.
// It does no locking of its own; the owner serializes access.
type Log struct {
	events []Event
	nextID int
}

func NewLog() *Log {
	return &Log{
		events: make([]Event, 0),
		nextID: 1,
	}
}

// Record appends an event stamped with at and returns it.
func (l *Log) Record(kind EventKind, taskID, taskName string, at time.Time) Event {
	event := Event{
		ID:        l.nextID,
		Kind:      kind,
		Timestamp: at,
		TaskID:    taskID,
		TaskName:  taskName,
	}

	l.events = append(l.events, event)
	l.nextID++

	return event
}

// Between returns the events whose timestamp lies strictly inside (start, end),
// in insertion order.
func (l *Log) Between(start, end time.Time) []Event {
	result := make([]Event, 0)
	for _, event := range l.events {
		if event.Timestamp.After(start) && event.Timestamp.Before(end) {
			result = append(result, event)
		}
	}
	return result
}

// All returns a copy of every recorded event.
func (l *Log) All() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

func (l *Log) Len() int {
	return len(l.events)
}
