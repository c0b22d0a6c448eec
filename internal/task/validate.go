package task

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // Field or JSON path of the offending value
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a task built from user input: the title must be non-blank,
// the enumerated fields must hold known values and the due date must be a real
// calendar date. All problems are joined into one error.
func Validate(t Task) error {
	var errs []error

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, &ValidationError{Path: "title", Err: errors.New("missing required field")})
	}
	if _, err := ParseCategory(t.Category); err != nil {
		errs = append(errs, &ValidationError{Path: "category", Err: err})
	}
	if _, err := ParseDueDate(t.DueDate); err != nil {
		errs = append(errs, &ValidationError{Path: "due_date", Err: err})
	}
	if _, err := ParsePriority(t.Priority); err != nil {
		errs = append(errs, &ValidationError{Path: "priority", Err: err})
	}
	if _, err := ParseStatus(t.CompletionStatus); err != nil {
		errs = append(errs, &ValidationError{Path: "completion_status", Err: err})
	}

	return errors.Join(errs...)
}

// Normalize returns t with its enumerated fields rewritten to their canonical
// spelling. Fields that do not parse are left untouched.
func Normalize(t Task) Task {
	if c, err := ParseCategory(t.Category); err == nil {
		t.Category = string(c)
	}
	if p, err := ParsePriority(t.Priority); err == nil {
		t.Priority = string(p)
	}
	if s, err := ParseStatus(t.CompletionStatus); err == nil {
		t.CompletionStatus = string(s)
	}
	t.Title = strings.TrimSpace(t.Title)
	t.DueDate = strings.TrimSpace(t.DueDate)
	return t
}
