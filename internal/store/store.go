// Package store owns the task list and its on-disk copy.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/plantivity-go/internal/task"
)

// MaxTasks is the list size at which AddTask clears the list before appending.
const MaxTasks = 20

// SchemaVersion is the data file version written by Save.
const SchemaVersion = 1

// dataFile is the on-disk layout.
type dataFile struct {
	SchemaVersion int         `json:"schema_version"`
	Tasks         []task.Task `json:"tasks"`
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSaveErrorHandler registers a callback invoked whenever Save fails.
func WithSaveErrorHandler(fn func(error)) Option {
	return func(s *Store) {
		s.onSaveError = fn
	}
}

// Store holds the ordered task list backed by a JSON file.
type Store struct {
	path        string
	tasks       []task.Task
	logger      *log.Logger
	onSaveError func(error)
	lastSaveErr error
}

// New creates a store for the data file at path and loads it.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load()
	return s
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// LastSaveError returns the error from the most recent Save, or nil if it
// succeeded.
func (s *Store) LastSaveError() error {
	return s.lastSaveErr
}

// Load replaces the in-memory list with the data file's contents. Any failure
// is logged and leaves the store empty.
func (s *Store) Load() {
	tasks, err := readFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no data file yet, starting empty", "path", s.path)
		} else {
			s.logger.Error("Error loading tasks", "path", s.path, "err", err)
		}
		s.tasks = []task.Task{}
		return
	}
	s.tasks = tasks
	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
}

// Save writes the whole list to the data file, overwriting it. Failures are
// logged, recorded and reported to the save-error handler but never returned.
func (s *Store) Save() {
	if err := writeFile(s.path, s.tasks); err != nil {
		s.lastSaveErr = err
		s.logger.Error("Error saving tasks", "path", s.path, "err", err)
		if s.onSaveError != nil {
			s.onSaveError(err)
		}
		return
	}
	s.lastSaveErr = nil
}

// AddTask appends t. When the list already holds MaxTasks or more entries it
// is cleared first.
func (s *Store) AddTask(t task.Task) {
	if len(s.tasks) >= MaxTasks {
		s.logger.Warn("task list full, clearing before add", "limit", MaxTasks)
		s.tasks = []task.Task{}
	}
	s.tasks = append(s.tasks, t)
	s.Save()
}

// UpdateTask replaces the first task titled oldTask.Title with newTask,
// keeping its position. It reports whether a match was found; nothing is
// saved when there is none.
func (s *Store) UpdateTask(oldTask, newTask task.Task) bool {
	i := s.index(oldTask.Title)
	if i < 0 {
		return false
	}
	s.tasks[i] = newTask
	s.Save()
	return true
}

// DeleteTask removes the first task with the given title and reports whether
// one was removed.
func (s *Store) DeleteTask(title string) bool {
	i := s.index(title)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.Save()
	return true
}

func (s *Store) index(title string) int {
	for i := range s.tasks {
		if s.tasks[i].Title == title {
			return i
		}
	}
	return -1
}

// readFile decodes and schema-checks the data file.
func readFile(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	if result := validateDocument(doc); !result.Valid {
		return nil, fmt.Errorf("data file does not match schema: %w", errors.Join(result.Errors...))
	}

	var f dataFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}
	if f.Tasks == nil {
		f.Tasks = []task.Task{}
	}
	return f.Tasks, nil
}

// writeFile writes tasks with 2-space indentation and a trailing newline.
func writeFile(path string, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(dataFile{SchemaVersion: SchemaVersion, Tasks: tasks}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data file: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}
