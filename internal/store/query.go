package store

import (
	"math"
	"strconv"

	"github.com/nibzard/plantivity-go/internal/task"
)

// FilterAll matches any value in a Filter field.
const FilterAll = "All"

// Filter narrows a task listing. An empty field or FilterAll leaves that
// field unconstrained; other values must match exactly.
type Filter struct {
	Category string
	Priority string
	Status   string
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return unconstrained(f.Category) && unconstrained(f.Priority) && unconstrained(f.Status)
}

// Match reports whether t passes the filter.
func (f Filter) Match(t task.Task) bool {
	if !unconstrained(f.Category) && t.Category != f.Category {
		return false
	}
	if !unconstrained(f.Priority) && t.Priority != f.Priority {
		return false
	}
	if !unconstrained(f.Status) && t.CompletionStatus != f.Status {
		return false
	}
	return true
}

func unconstrained(v string) bool {
	return v == "" || v == FilterAll
}

// GetAllTasks returns a copy of the ordered task list.
func (s *Store) GetAllTasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// GetCompletedTasks returns tasks whose status is "Completed".
func (s *Store) GetCompletedTasks() []task.Task {
	return s.collect(func(t task.Task) bool { return t.IsCompleted() })
}

// GetIncompleteTasks returns tasks whose status is anything but "Completed".
func (s *Store) GetIncompleteTasks() []task.Task {
	return s.collect(func(t task.Task) bool { return !t.IsCompleted() })
}

// GetCompletionPercentage returns the share of completed tasks as a
// percentage rounded to two decimals, half away from zero. An empty list
// yields 0.
func (s *Store) GetCompletionPercentage() float64 {
	if len(s.tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range s.tasks {
		if t.IsCompleted() {
			completed++
		}
	}
	pct := float64(completed) / float64(len(s.tasks)) * 100
	return math.Round(pct*100) / 100
}

// FormatPercentage renders a completion percentage as stored, with no
// trailing zeros: 25 as "25" and 66.67 as "66.67".
func FormatPercentage(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

// GetNextTask returns the incomplete task with the earliest due date. Due
// dates compare as strings, which matches chronological order for
// YYYY-MM-DD values; ties go to the task listed first. The boolean is false
// when every task is completed.
func (s *Store) GetNextTask() (task.Task, bool) {
	var next task.Task
	found := false
	for _, t := range s.tasks {
		if t.IsCompleted() {
			continue
		}
		if !found || t.DueDate < next.DueDate {
			next = t
			found = true
		}
	}
	return next, found
}

// Find returns the first task with the given title.
func (s *Store) Find(title string) (task.Task, bool) {
	if i := s.index(title); i >= 0 {
		return s.tasks[i], true
	}
	return task.Task{}, false
}

// TasksDue returns the tasks whose due date equals date exactly.
func (s *Store) TasksDue(date string) []task.Task {
	return s.collect(func(t task.Task) bool { return t.DueDate == date })
}

// Filter returns the tasks matching f in list order.
func (s *Store) Filter(f Filter) []task.Task {
	return s.collect(f.Match)
}

// Counts returns the number of tasks per completion status. Known statuses
// are always present, possibly with a zero count.
func (s *Store) Counts() map[string]int {
	counts := make(map[string]int, len(task.Statuses()))
	for _, st := range task.Statuses() {
		counts[string(st)] = 0
	}
	for _, t := range s.tasks {
		counts[t.CompletionStatus]++
	}
	return counts
}

func (s *Store) collect(keep func(task.Task) bool) []task.Task {
	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
