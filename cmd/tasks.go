package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/plantivity-go/internal/config"
	"github.com/nibzard/plantivity-go/internal/store"
	"github.com/nibzard/plantivity-go/internal/task"
)

// lsCommand lists tasks in stored order, optionally filtered.
func lsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plantivity ls", flag.ContinueOnError)
	fs.SetOutput(stderr)
	category := fs.String("category", "", "Filter by category")
	priority := fs.String("priority", "", "Filter by priority")
	status := fs.String("status", "", "Filter by status")
	verbose := fs.Bool("v", false, "Show descriptions")
	output := fs.String("o", "table", "Output format: table, json or yaml")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	filter, err := parseFilter(*category, *priority, *status)
	if err != nil {
		return err
	}

	s := openStore(cfg)
	tasks := s.Filter(filter)
	switch strings.ToLower(*output) {
	case "table":
	case "json", "yaml":
		return writeTasks(stdout, tasks, strings.ToLower(*output))
	default:
		return fmt.Errorf("unknown output format %q, must be table, json or yaml", *output)
	}
	if len(tasks) == 0 {
		if filter.IsZero() {
			fmt.Fprintln(stdout, "No tasks yet.")
		} else {
			fmt.Fprintln(stdout, "No tasks match the filters.")
		}
		return nil
	}

	fmt.Fprintln(stdout, renderTaskTable(tasks, *verbose))
	return nil
}

// parseFilter turns flag values into a store filter. Empty values and "All"
// leave a field unconstrained; anything else must be a known value.
func parseFilter(category, priority, status string) (store.Filter, error) {
	var f store.Filter
	if !isAll(category) {
		c, err := task.ParseCategory(category)
		if err != nil {
			return f, err
		}
		f.Category = string(c)
	}
	if !isAll(priority) {
		p, err := task.ParsePriority(priority)
		if err != nil {
			return f, err
		}
		f.Priority = string(p)
	}
	if !isAll(status) {
		st, err := task.ParseStatus(status)
		if err != nil {
			return f, err
		}
		f.Status = string(st)
	}
	return f, nil
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, store.FilterAll)
}

// writeTasks encodes tasks for scripts. An empty result is an empty list.
func writeTasks(w io.Writer, tasks []task.Task, format string) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func renderTaskTable(tasks []task.Task, verbose bool) string {
	headers := []string{"Title", "Category", "Due", "Priority", "Status"}
	if verbose {
		headers = append(headers, "Description")
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		row := []string{t.Title, t.Category, t.DueDate, t.Priority, t.CompletionStatus}
		if verbose {
			row = append(row, t.Description)
		}
		rows = append(rows, row)
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

// taskFlags binds the editable task fields to a flag set.
type taskFlags struct {
	title    *string
	desc     *string
	category *string
	due      *string
	priority *string
	status   *string
}

func bindTaskFlags(fs *flag.FlagSet) taskFlags {
	return taskFlags{
		title:    fs.String("title", "", "Task title"),
		desc:     fs.String("desc", "", "Task description"),
		category: fs.String("category", "", "Category (School, Work, Personal, Health, Other)"),
		due:      fs.String("due", "", "Due date (YYYY-MM-DD)"),
		priority: fs.String("priority", "", "Priority (High, Medium, Low)"),
		status:   fs.String("status", "", "Status (Not Started, In Progress, Completed)"),
	}
}

// apply copies the flags that were set on fs onto t.
func (tf taskFlags) apply(fs *flag.FlagSet, t task.Task) task.Task {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			t.Title = *tf.title
		case "desc":
			t.Description = *tf.desc
		case "category":
			t.Category = *tf.category
		case "due":
			t.DueDate = *tf.due
		case "priority":
			t.Priority = *tf.priority
		case "status":
			t.CompletionStatus = *tf.status
		}
	})
	return task.Normalize(t)
}

// addCommand adds one task.
func addCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plantivity add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tf := bindTaskFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	t := task.New("", "", task.CategoryOther, now().Format(task.DateLayout), task.PriorityMedium)
	t = tf.apply(fs, t)
	if err := task.Validate(t); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	s := openStore(cfg)
	if s.Len() >= store.MaxTasks {
		fmt.Fprintf(stdout, "Task list is full (%d tasks); clearing it before adding.\n", store.MaxTasks)
	}
	s.AddTask(t)
	warnIfUnsaved(s)
	fmt.Fprintf(stdout, "Added %q (due %s)\n", t.Title, t.DueDate)
	return nil
}

// splitTitleArg accepts the task title before or after the flags.
func splitTitleArg(fs *flag.FlagSet, args []string) (string, error) {
	var title string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		title, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	rest := fs.Args()
	if title == "" && len(rest) > 0 {
		title, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 {
		return "", fmt.Errorf("unexpected arguments: %v", rest)
	}
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("task title is required")
	}
	return title, nil
}

// editCommand changes the fields given as flags on the first task titled TITLE.
func editCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plantivity edit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tf := bindTaskFlags(fs)

	title, err := splitTitleArg(fs, args)
	if err != nil {
		return err
	}
	if fs.NFlag() == 0 {
		return fmt.Errorf("nothing to change: pass at least one of -title, -desc, -category, -due, -priority, -status")
	}

	s := openStore(cfg)
	old, ok := s.Find(title)
	if !ok {
		return fmt.Errorf("task not found: %q", title)
	}
	updated := tf.apply(fs, old)
	if err := task.Validate(updated); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	s.UpdateTask(old, updated)
	warnIfUnsaved(s)
	fmt.Fprintf(stdout, "Updated %q\n", updated.Title)
	return nil
}

// rmCommand deletes the first task titled TITLE.
func rmCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plantivity rm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	title, err := splitTitleArg(fs, args)
	if err != nil {
		return err
	}

	s := openStore(cfg)
	if !s.DeleteTask(title) {
		return fmt.Errorf("task not found: %q", title)
	}
	warnIfUnsaved(s)
	fmt.Fprintf(stdout, "Deleted %q\n", title)
	return nil
}

// doneCommand marks the first task titled TITLE as completed.
func doneCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plantivity done", flag.ContinueOnError)
	fs.SetOutput(stderr)
	title, err := splitTitleArg(fs, args)
	if err != nil {
		return err
	}

	s := openStore(cfg)
	old, ok := s.Find(title)
	if !ok {
		return fmt.Errorf("task not found: %q", title)
	}
	if old.IsCompleted() {
		fmt.Fprintf(stdout, "%q is already completed\n", title)
		return nil
	}
	updated := old
	updated.CompletionStatus = string(task.StatusCompleted)
	s.UpdateTask(old, updated)
	warnIfUnsaved(s)
	fmt.Fprintf(stdout, "Completed %q (%s%% done)\n", title, store.FormatPercentage(s.GetCompletionPercentage()))
	return nil
}

// nextCommand prints the incomplete task with the earliest due date.
func nextCommand(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	s := openStore(cfg)
	t, ok := s.GetNextTask()
	if !ok {
		fmt.Fprintln(stdout, "Next Task: None")
		return nil
	}
	fmt.Fprintf(stdout, "Next Task: %s\n", t.Title)
	fmt.Fprintf(stdout, "  Due: %s  Category: %s  Priority: %s  Status: %s\n",
		t.DueDate, t.Category, t.Priority, t.CompletionStatus)
	if t.Description != "" {
		fmt.Fprintf(stdout, "  %s\n", t.Description)
	}
	return nil
}
