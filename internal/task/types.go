// Package task defines the task record and its enumerated fields.
package task

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the due-date layout (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Category groups tasks by area of life.
type Category string

const (
	CategorySchool   Category = "School"
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryHealth   Category = "Health"
	CategoryOther    Category = "Other"
)

// Categories returns the known categories in display order.
func Categories() []Category {
	return []Category{CategorySchool, CategoryWork, CategoryPersonal, CategoryHealth, CategoryOther}
}

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities returns the known priorities in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Status represents a task's completion status.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses returns the known statuses in workflow order.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// Next returns the status that follows s in workflow order, wrapping from
// Completed back to Not Started. Unknown statuses advance to Not Started.
func (s Status) Next() Status {
	switch s {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

// Task is one to-do record. Title acts as the lookup key for updates and
// deletes; it is not required to be unique.
type Task struct {
	Title            string `json:"title" yaml:"title"`
	Description      string `json:"description" yaml:"description"`
	Category         string `json:"category" yaml:"category"`
	DueDate          string `json:"due_date" yaml:"due_date"`
	Priority         string `json:"priority" yaml:"priority"`
	CompletionStatus string `json:"completion_status" yaml:"completion_status"`
}

// New builds a task with the default "Not Started" status.
func New(title, description string, category Category, dueDate string, priority Priority) Task {
	return Task{
		Title:            title,
		Description:      description,
		Category:         string(category),
		DueDate:          dueDate,
		Priority:         string(priority),
		CompletionStatus: string(StatusNotStarted),
	}
}

// IsCompleted reports whether the task's status is "Completed".
func (t Task) IsCompleted() bool {
	return t.CompletionStatus == string(StatusCompleted)
}

// Due parses the task's due date.
func (t Task) Due() (time.Time, error) {
	return ParseDueDate(t.DueDate)
}

// ParseDueDate parses a YYYY-MM-DD date.
func ParseDueDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q, must be one of: %s", s, joinValues(Categories()))
}

// ParsePriority parses a priority name case-insensitively.
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities() {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q, must be one of: %s", s, joinValues(Priorities()))
}

// ParseStatus parses a completion status case-insensitively. Underscores and
// hyphens are accepted in place of the space ("in_progress", "not-started").
func ParseStatus(s string) (Status, error) {
	normalized := strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s))
	for _, st := range Statuses() {
		if strings.EqualFold(normalized, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status %q, must be one of: %s", s, joinValues(Statuses()))
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
