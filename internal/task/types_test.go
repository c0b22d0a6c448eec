package task

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDefaultsToNotStarted(t *testing.T) {
	tk := New("Essay", "draft intro", CategorySchool, "2025-03-10", PriorityHigh)
	if tk.CompletionStatus != "Not Started" {
		t.Errorf("CompletionStatus: got %q, want %q", tk.CompletionStatus, "Not Started")
	}
	if tk.Category != "School" || tk.Priority != "High" {
		t.Errorf("unexpected fields: %+v", tk)
	}
	if tk.IsCompleted() {
		t.Error("new task should not be completed")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"School", CategorySchool, false},
		{"work", CategoryWork, false},
		{"  PERSONAL ", CategoryPersonal, false},
		{"Health", CategoryHealth, false},
		{"other", CategoryOther, false},
		{"Hobby", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	if p, err := ParsePriority("medium"); err != nil || p != PriorityMedium {
		t.Errorf("ParsePriority(medium) = %q, %v", p, err)
	}
	_, err := ParsePriority("Urgent")
	if err == nil {
		t.Fatal("expected error for unknown priority")
	}
	if !strings.Contains(err.Error(), "High, Medium, Low") {
		t.Errorf("error should list allowed values, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Not Started", StatusNotStarted},
		{"not_started", StatusNotStarted},
		{"in-progress", StatusInProgress},
		{"COMPLETED", StatusCompleted},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestStatusNext(t *testing.T) {
	if got := StatusNotStarted.Next(); got != StatusInProgress {
		t.Errorf("Not Started -> %q", got)
	}
	if got := StatusInProgress.Next(); got != StatusCompleted {
		t.Errorf("In Progress -> %q", got)
	}
	if got := StatusCompleted.Next(); got != StatusNotStarted {
		t.Errorf("Completed -> %q", got)
	}
	if got := Status("whatever").Next(); got != StatusNotStarted {
		t.Errorf("unknown -> %q", got)
	}
}

func TestParseDueDate(t *testing.T) {
	d, err := ParseDueDate("2025-02-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != 2 || d.Day() != 20 {
		t.Errorf("got %v", d)
	}
	for _, bad := range []string{"", "2025-02-30", "20-02-2025", "2025/02/20"} {
		if _, err := ParseDueDate(bad); err == nil {
			t.Errorf("ParseDueDate(%q) expected error", bad)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := New("Run", "5k", CategoryHealth, "2025-01-05", PriorityLow)
	if err := Validate(valid); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}

	bad := Task{Title: " ", Category: "Hobby", DueDate: "soon", Priority: "P1", CompletionStatus: "done"}
	err := Validate(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}

	for _, field := range []string{"title", "category", "due_date", "priority", "completion_status"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should mention %s, got %v", field, err)
		}
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("expected *ValidationError in chain, got %T", err)
	}
}

func TestNormalize(t *testing.T) {
	in := Task{Title: "  Gym ", Category: "health", DueDate: " 2025-01-05 ", Priority: "low", CompletionStatus: "in progress"}
	got := Normalize(in)
	want := Task{Title: "Gym", Category: "Health", DueDate: "2025-01-05", Priority: "Low", CompletionStatus: "In Progress"}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}

	odd := Task{Title: "x", Category: "Hobby"}
	if Normalize(odd).Category != "Hobby" {
		t.Error("unknown category should be left as-is")
	}
}
