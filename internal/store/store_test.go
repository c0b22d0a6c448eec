package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nibzard/plantivity-go/internal/task"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plantivity_data.json")
	return New(path, WithLogger(quietLogger())), path
}

func sample(title, due, status string) task.Task {
	return task.Task{
		Title:            title,
		Description:      "desc " + title,
		Category:         "Work",
		DueDate:          due,
		Priority:         "Medium",
		CompletionStatus: status,
	}
}

func TestNewWithMissingFileStartsEmpty(t *testing.T) {
	s, path := newTestStore(t)
	if got := s.Len(); got != 0 {
		t.Fatalf("Len: got %d, want 0", got)
	}
	if s.Path() != path {
		t.Errorf("Path: got %q, want %q", s.Path(), path)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("loading should not create the data file, stat err = %v", err)
	}
}

func TestLoadRecoversFromBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"invalid json", "{not json"},
		{"tasks not an array", `{"schema_version":1,"tasks":{"title":"x"}}`},
		{"field type mismatch", `{"schema_version":1,"tasks":[{"title":1,"description":"","category":"","due_date":"","priority":"","completion_status":""}]}`},
		{"missing field", `{"schema_version":1,"tasks":[{"title":"x"}]}`},
		{"top-level array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			s := New(path, WithLogger(log.New(&buf)))
			if s.Len() != 0 {
				t.Errorf("Len: got %d, want 0", s.Len())
			}
			if !strings.Contains(buf.String(), "Error loading tasks") {
				t.Errorf("expected load failure to be logged, got %q", buf.String())
			}
		})
	}
}

func TestAddTaskAppendsAndPersists(t *testing.T) {
	s, path := newTestStore(t)

	for i := 0; i < 5; i++ {
		before := s.Len()
		s.AddTask(sample(fmt.Sprintf("T%d", i), "2025-01-01", "Not Started"))
		if s.Len() != before+1 {
			t.Fatalf("after add %d: Len got %d, want %d", i, s.Len(), before+1)
		}
	}

	reloaded := New(path, WithLogger(quietLogger()))
	if !reflect.DeepEqual(reloaded.GetAllTasks(), s.GetAllTasks()) {
		t.Errorf("persisted list differs:\n got %+v\nwant %+v", reloaded.GetAllTasks(), s.GetAllTasks())
	}
}

func TestAddTaskCapacityReset(t *testing.T) {
	s, path := newTestStore(t)
	for i := 0; i < MaxTasks; i++ {
		s.AddTask(sample(fmt.Sprintf("T%02d", i), "2025-01-01", "Not Started"))
	}
	if s.Len() != MaxTasks {
		t.Fatalf("Len: got %d, want %d", s.Len(), MaxTasks)
	}

	newest := sample("the 21st", "2025-06-01", "In Progress")
	s.AddTask(newest)

	all := s.GetAllTasks()
	if len(all) != 1 {
		t.Fatalf("Len after 21st add: got %d, want 1", len(all))
	}
	if all[0] != newest {
		t.Errorf("only task: got %+v, want %+v", all[0], newest)
	}

	reloaded := New(path, WithLogger(quietLogger()))
	if reloaded.Len() != 1 {
		t.Errorf("reloaded Len: got %d, want 1", reloaded.Len())
	}
}

func TestAddTaskLengthProperty(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 3*MaxTasks+7; i++ {
		before := s.Len()
		s.AddTask(sample(fmt.Sprintf("T%d", i), "2025-01-01", "Not Started"))
		want := before + 1
		if before >= MaxTasks {
			want = 1
		}
		if s.Len() != want {
			t.Fatalf("add #%d: Len got %d, want %d", i, s.Len(), want)
		}
	}
}

func TestUpdateTask(t *testing.T) {
	s, path := newTestStore(t)
	s.AddTask(sample("a", "2025-01-01", "Not Started"))
	s.AddTask(sample("b", "2025-01-02", "Not Started"))
	s.AddTask(sample("c", "2025-01-03", "Not Started"))

	old := s.GetAllTasks()[1]
	updated := old
	updated.Title = "b2"
	updated.CompletionStatus = "Completed"

	if !s.UpdateTask(old, updated) {
		t.Fatal("UpdateTask reported no match")
	}
	all := s.GetAllTasks()
	if len(all) != 3 {
		t.Fatalf("Len: got %d, want 3", len(all))
	}
	if all[1] != updated {
		t.Errorf("index 1: got %+v, want %+v", all[1], updated)
	}

	reloaded := New(path, WithLogger(quietLogger()))
	if reloaded.GetAllTasks()[1] != updated {
		t.Errorf("update was not persisted")
	}
}

func TestUpdateTaskNoMatchDoesNotSave(t *testing.T) {
	s, path := newTestStore(t)
	s.AddTask(sample("a", "2025-01-01", "Not Started"))

	// Remove the file; a save would recreate it.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if s.UpdateTask(sample("missing", "", ""), sample("x", "", "")) {
		t.Fatal("UpdateTask should report no match")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("no-match update must not save, stat err = %v", err)
	}
	if got := s.GetAllTasks(); len(got) != 1 || got[0].Title != "a" {
		t.Errorf("list changed on no-match update: %+v", got)
	}
}

func TestUpdateTaskFirstMatchOnly(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddTask(sample("dup", "2025-01-01", "Not Started"))
	s.AddTask(sample("dup", "2025-01-02", "Not Started"))

	s.UpdateTask(task.Task{Title: "dup"}, sample("dup", "2025-09-09", "Completed"))

	all := s.GetAllTasks()
	if all[0].DueDate != "2025-09-09" {
		t.Errorf("first duplicate not replaced: %+v", all[0])
	}
	if all[1].DueDate != "2025-01-02" {
		t.Errorf("second duplicate should be untouched: %+v", all[1])
	}
}

func TestDeleteTask(t *testing.T) {
	s, path := newTestStore(t)
	s.AddTask(sample("dup", "2025-01-01", "Not Started"))
	s.AddTask(sample("other", "2025-01-02", "Not Started"))
	s.AddTask(sample("dup", "2025-01-03", "Not Started"))

	if !s.DeleteTask("dup") {
		t.Fatal("DeleteTask reported no removal")
	}
	all := s.GetAllTasks()
	if len(all) != 2 {
		t.Fatalf("Len: got %d, want 2", len(all))
	}
	if all[0].Title != "other" || all[1].DueDate != "2025-01-03" {
		t.Errorf("wrong entry removed: %+v", all)
	}

	if s.DeleteTask("absent") {
		t.Error("deleting an absent title should report false")
	}
	if s.DeleteTask("absent") {
		t.Error("repeated delete of an absent title should report false")
	}
	if s.Len() != 2 {
		t.Errorf("absent delete changed the list: Len %d", s.Len())
	}

	reloaded := New(path, WithLogger(quietLogger()))
	if reloaded.Len() != 2 {
		t.Errorf("reloaded Len: got %d, want 2", reloaded.Len())
	}
}

func TestRoundTripPreservesEveryField(t *testing.T) {
	s, path := newTestStore(t)
	tasks := []task.Task{
		{Title: "", Description: "", Category: "", DueDate: "", Priority: "", CompletionStatus: ""},
		{Title: "Ünïcode ✓", Description: "line1\nline2 \"quoted\"", Category: "Hobby", DueDate: "not-a-date", Priority: "P0", CompletionStatus: "Blocked"},
		task.New("Essay", "intro", task.CategorySchool, "2025-03-10", task.PriorityHigh),
	}
	for _, tk := range tasks {
		s.AddTask(tk)
	}

	reloaded := New(path, WithLogger(quietLogger()))
	if !reflect.DeepEqual(reloaded.GetAllTasks(), tasks) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", reloaded.GetAllTasks(), tasks)
	}
}

func TestSaveFileFormat(t *testing.T) {
	s, path := newTestStore(t)
	s.AddTask(sample("a", "2025-01-01", "Not Started"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		t.Error("data file should end with a newline")
	}
	if !strings.Contains(content, "\n  \"tasks\": [") {
		t.Errorf("expected 2-space indented tasks key, got:\n%s", content)
	}
	if !strings.Contains(content, `"schema_version": 1`) {
		t.Errorf("expected schema_version, got:\n%s", content)
	}
}

func TestSaveEmptyListWritesArray(t *testing.T) {
	s, path := newTestStore(t)
	s.AddTask(sample("a", "2025-01-01", "Not Started"))
	s.DeleteTask("a")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"tasks": []`) {
		t.Errorf("expected empty array, got:\n%s", data)
	}
	if res := Validate(path); !res.Valid {
		t.Errorf("empty data file should validate: %v", res.Errors)
	}
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	// A directory cannot be read or written as a file.
	dir := t.TempDir()
	var buf bytes.Buffer
	var handled []error
	s := New(dir,
		WithLogger(log.New(&buf)),
		WithSaveErrorHandler(func(err error) { handled = append(handled, err) }),
	)

	s.AddTask(sample("a", "2025-01-01", "Not Started"))

	if s.Len() != 1 {
		t.Fatalf("in-memory add should succeed, Len %d", s.Len())
	}
	if s.LastSaveError() == nil {
		t.Error("LastSaveError should be set")
	}
	if len(handled) != 1 {
		t.Errorf("save-error handler calls: got %d, want 1", len(handled))
	}
	if !strings.Contains(buf.String(), "Error saving tasks") {
		t.Errorf("expected save failure to be logged, got %q", buf.String())
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "data.json")
	s := New(path, WithLogger(quietLogger()))
	s.AddTask(sample("a", "2025-01-01", "Not Started"))
	if err := s.LastSaveError(); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("data file not created: %v", err)
	}
}

func TestIndependentStoresLastWriterWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	first := New(path, WithLogger(quietLogger()))
	second := New(path, WithLogger(quietLogger()))

	first.AddTask(sample("from-first", "2025-01-01", "Not Started"))
	second.AddTask(sample("from-second", "2025-01-01", "Not Started"))

	reloaded := New(path, WithLogger(quietLogger()))
	all := reloaded.GetAllTasks()
	if len(all) != 1 || all[0].Title != "from-second" {
		t.Errorf("expected last writer to win, got %+v", all)
	}
}
