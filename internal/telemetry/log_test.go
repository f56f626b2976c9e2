package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

func TestLog_RecordAssignsSequentialIDs(t *testing.T) {
	l := NewLog()

	e1 := l.Record(EventTaskAdded, "1", "pick up eggs", base)
	e2 := l.Record(EventTaskModified, "1", "pick up eggs", base.Add(time.Second))

	assert.Equal(t, 1, e1.ID)
	assert.Equal(t, 2, e2.ID)
	assert.Equal(t, 2, l.Len())
}

func TestLog_BetweenExcludesBoundaries(t *testing.T) {
	l := NewLog()
	t1, t2, t3 := base, base.Add(time.Minute), base.Add(2*time.Minute)

	l.Record(EventTaskAdded, "1", "a", t1)
	l.Record(EventTaskAdded, "2", "b", t2)
	l.Record(EventTaskRemoved, "1", "a", t3)

	got := l.Between(t1, t3)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].TaskName)
	assert.Equal(t, t2, got[0].Timestamp)
}

func TestLog_BetweenKeepsInsertionOrder(t *testing.T) {
	l := NewLog()
	l.Record(EventTaskAdded, "1", "a", base.Add(time.Second))
	l.Record(EventTaskModified, "1", "a", base.Add(2*time.Second))
	l.Record(EventTaskRemoved, "1", "a", base.Add(3*time.Second))

	got := l.Between(base, base.Add(time.Hour))
	require.Len(t, got, 3)
	assert.Equal(t, []EventKind{EventTaskAdded, EventTaskModified, EventTaskRemoved},
		[]EventKind{got[0].Kind, got[1].Kind, got[2].Kind})
}

func TestLog_AllReturnsCopy(t *testing.T) {
	l := NewLog()
	l.Record(EventTaskAdded, "1", "a", base)

	all := l.All()
	all[0].TaskName = "mutated"

	assert.Equal(t, "a", l.All()[0].TaskName)
}

func TestEvent_String(t *testing.T) {
	e := Event{Kind: EventTaskAdded, Timestamp: base, TaskID: "1", TaskName: "Task 1"}

	assert.Equal(t, "2024-05-10T08:30:00 Task added: Task 1", e.String())
	assert.Len(t, e.String()[:len(TimestampLayout)], 19)
}

func TestCountByKind(t *testing.T) {
	events := []Event{
		{Kind: EventTaskAdded},
		{Kind: EventTaskAdded},
		{Kind: EventTaskModified},
		{Kind: EventTaskRemoved},
		{Kind: EventKind("archived")},
	}

	c := CountByKind(events)

	assert.Equal(t, Counts{Added: 2, Modified: 1, Removed: 1}, c)
	assert.Equal(t, 4, c.Total())
}
