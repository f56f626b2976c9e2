package task

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"

	"todolist/internal/clock"
	"todolist/internal/telemetry"
)

// ErrNotFound is never returned by the registry itself (lookups of unknown ids are
// silent); callers that need to surface a missing task use it.
var ErrNotFound = errors.New("task not found")

// Registry owns a set of tasks keyed by id and the activity log of changes to them.
// A single mutex guards both, so every operation sees a consistent snapshot.
type Registry struct {
	mu      sync.Mutex
	tasks   map[string]Task
	log     *telemetry.Log
	clock   clock.Clock
	logger  logrus.FieldLogger
	metrics *telemetry.Metrics
}

type Option func(*Registry)

func WithClock(c clock.Clock) Option {
	return func(r *Registry) { r.clock = c }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) { r.logger = l }
}

func WithMetrics(m *telemetry.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

func NewRegistry(opts ...Option) *Registry {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	r := &Registry{
		tasks:  make(map[string]Task),
		log:    telemetry.NewLog(),
		clock:  clock.RealClock{},
		logger: quiet,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add stores t, overwriting any task with the same id, and logs it as added.
func (r *Registry) Add(t Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[t.ID] = t.Clone()
	r.record(telemetry.EventTaskAdded, t)
}

// Get returns a copy of the stored task. Changing the copy does not change the
// registry; write it back with Modify.
func (r *Registry) Get(id string) (Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return Task{}, false
	}
	return t.Clone(), true
}

// Modify replaces the task stored under t.ID (inserting it if absent) and logs it as modified.
func (r *Registry) Modify(t Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[t.ID] = t.Clone()
	r.record(telemetry.EventTaskModified, t)
}

// Remove deletes the task and logs it under the name it had. Unknown ids are a no-op.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return false
	}
	delete(r.tasks, id)
	r.record(telemetry.EventTaskRemoved, t)
	return true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// ListTasks returns the tasks whose name contains filter (case-sensitive; "" matches
// everything), stable-sorted by cmp. A nil cmp sorts by id.
func (r *Registry) ListTasks(filter string, cmp func(a, b Task) int) []Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.collect(func(t Task) bool {
		return strings.Contains(t.Name, filter)
	}, cmp)
}

// ListTagged returns the tasks carrying at least one tag that matches the glob pattern.
func (r *Registry) ListTagged(pattern string, cmp func(a, b Task) int) ([]Task, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile tag pattern %q: %w", pattern, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.collect(func(t Task) bool {
		return slices.ContainsFunc(t.Tags, g.Match)
	}, cmp), nil
}

// Statistics counts the tasks whose deadline falls strictly inside (start, end).
// now decides which of those are overdue and is independent of the window.
func (r *Registry) Statistics(start, end, now time.Time) Statistics {
	r.mu.Lock()
	defer r.mu.Unlock()

	var s Statistics
	for _, t := range r.tasks {
		if !t.Deadline.After(start) || !t.Deadline.Before(end) {
			continue
		}
		s.TasksAdded++
		if t.Completed {
			s.TasksCompleted++
		}
		if t.IsOverdue(now) {
			s.TasksOverdue++
		}
	}
	return s
}

// ActivityLog returns the events stamped strictly inside (start, end), oldest first.
func (r *Registry) ActivityLog(start, end time.Time) []telemetry.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.log.Between(start, end)
}

// ActivityCounts tallies the events of ActivityLog(start, end) per kind.
func (r *Registry) ActivityCounts(start, end time.Time) telemetry.Counts {
	return telemetry.CountByKind(r.ActivityLog(start, end))
}

func (r *Registry) collect(match func(Task) bool, cmp func(a, b Task) int) []Task {
	if cmp == nil {
		cmp = ByID
	}

	// Map order is random; sort ids first so equal keys keep a stable relative order.
	ids := make([]string, 0, len(r.tasks))
	for id := range r.tasks {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Task, 0, len(ids))
	for _, id := range ids {
		t := r.tasks[id]
		if match(t) {
			out = append(out, t.Clone())
		}
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// record must be called with r.mu held.
func (r *Registry) record(kind telemetry.EventKind, t Task) {
	event := r.log.Record(kind, t.ID, t.Name, r.clock.Now())
	r.metrics.Observe(event, len(r.tasks))

	r.logger.WithFields(logrus.Fields{
		"kind":      kind,
		"task_id":   t.ID,
		"task_name": t.Name,
	}).Debug("task activity")
}
