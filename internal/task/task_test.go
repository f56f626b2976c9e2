package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewTask(t *testing.T) {
	task := NewTask("1", "pick up eggs", now.AddDate(0, 0, 2), []string{"errand", "food"})

	assert.Equal(t, "1", task.ID)
	assert.Equal(t, "pick up eggs", task.Name)
	assert.Equal(t, now.AddDate(0, 0, 2), task.Deadline)
	assert.Equal(t, []string{"errand", "food"}, task.Tags)
	assert.False(t, task.Completed)
}

func TestNewTask_AcceptsEmptyFields(t *testing.T) {
	task := NewTask("", "", now.AddDate(-1, 0, 0), nil)

	assert.Empty(t, task.ID)
	assert.Empty(t, task.Name)
	assert.Empty(t, task.Tags)
}

func TestNewTask_CopiesTags(t *testing.T) {
	tags := []string{"a", "b"}
	task := NewTask("1", "x", now, tags)

	tags[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, task.Tags)
}

func TestTask_SetDeadline(t *testing.T) {
	task := NewTask("2", "water plants", now.AddDate(0, 0, 1), nil)

	task.SetDeadline(now.AddDate(0, 0, 2))

	assert.Equal(t, now.AddDate(0, 0, 2), task.Deadline)
}

func TestTask_SetCompleted(t *testing.T) {
	task := NewTask("1", "x", now, nil)

	task.SetCompleted(true)
	assert.True(t, task.Completed)

	task.SetCompleted(false)
	assert.False(t, task.Completed)
}

func TestTask_IsOverdue(t *testing.T) {
	past := NewTask("1", "late", now.Add(-time.Hour), nil)
	future := NewTask("2", "soon", now.Add(time.Hour), nil)
	done := NewTask("3", "done", now.Add(-time.Hour), nil)
	done.SetCompleted(true)

	assert.True(t, past.IsOverdue(now))
	assert.False(t, future.IsOverdue(now))
	assert.False(t, done.IsOverdue(now))
	assert.False(t, NewTask("4", "edge", now, nil).IsOverdue(now))
}

func TestTask_HasTag(t *testing.T) {
	task := NewTask("1", "x", now, []string{"home", "weekly"})

	assert.True(t, task.HasTag("home"))
	assert.False(t, task.HasTag("work"))
}

func TestTask_CloneSharesNoTags(t *testing.T) {
	task := NewTask("1", "x", now, []string{"a"})
	c := task.Clone()

	c.Tags[0] = "b"

	assert.Equal(t, "a", task.Tags[0])
}

func TestComparators(t *testing.T) {
	a := NewTask("a", "beta", now.Add(time.Hour), nil)
	b := NewTask("b", "alpha", now, nil)

	assert.Positive(t, ByDeadline(a, b))
	assert.Positive(t, ByName(a, b))
	assert.Negative(t, ByID(a, b))
	assert.Zero(t, ByID(a, a))
}
