package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/plantivity-go/internal/store"
	"github.com/nibzard/plantivity-go/internal/task"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldCategory
	fieldDueDate
	fieldPriority
	fieldStatus
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTitle:       "Title",
	fieldDescription: "Description",
	fieldCategory:    "Category",
	fieldDueDate:     "Due Date",
	fieldPriority:    "Priority",
	fieldStatus:      "Status",
}

// form edits one task. Text fields are text inputs; choice fields cycle.
type form struct {
	editing  bool
	original task.Task

	title       textinput.Model
	description textinput.Model
	dueDate     textinput.Model
	category    choices
	priority    choices
	status      choices

	focus formField
	err   error
}

func newTextInput(value, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	return ti
}

func newForm(today time.Time) *form {
	f := &form{
		title:       newTextInput("", "What needs doing?", 100),
		description: newTextInput("", "optional", 500),
		dueDate:     newTextInput(today.Format(task.DateLayout), "YYYY-MM-DD", len(task.DateLayout)),
		category:    newChoices(task.Categories(), string(task.CategorySchool)),
		priority:    newChoices(task.Priorities(), string(task.PriorityMedium)),
		status:      newChoices(task.Statuses(), string(task.StatusNotStarted)),
	}
	f.setFocus(fieldTitle)
	return f
}

func editForm(t task.Task) *form {
	f := &form{
		editing:     true,
		original:    t,
		title:       newTextInput(t.Title, "", 100),
		description: newTextInput(t.Description, "optional", 500),
		dueDate:     newTextInput(t.DueDate, "YYYY-MM-DD", len(task.DateLayout)),
		category:    newChoices(task.Categories(), t.Category),
		priority:    newChoices(task.Priorities(), t.Priority),
		status:      newChoices(task.Statuses(), t.CompletionStatus),
	}
	f.setFocus(fieldTitle)
	return f
}

// choices is a cycling selector over an enumerated field.
type choices struct {
	values []string
	index  int
}

// newChoices selects current among known. A stored value outside the known
// set is kept as an extra choice so editing other fields never rewrites it;
// validation on submit still asks for a known value.
func newChoices[T ~string](known []T, current string) choices {
	c := choices{values: make([]string, 0, len(known)+1), index: -1}
	for i, v := range known {
		c.values = append(c.values, string(v))
		if string(v) == current {
			c.index = i
		}
	}
	if c.index < 0 {
		c.values = append(c.values, current)
		c.index = len(c.values) - 1
	}
	return c
}

func (c choices) value() string {
	return c.values[c.index]
}

func (c *choices) step(delta int) {
	n := len(c.values)
	c.index = ((c.index+delta)%n + n) % n
}

// task builds the task described by the form's current input.
func (f *form) task() task.Task {
	return task.Task{
		Title:            strings.TrimSpace(f.title.Value()),
		Description:      f.description.Value(),
		Category:         f.category.value(),
		DueDate:          strings.TrimSpace(f.dueDate.Value()),
		Priority:         f.priority.value(),
		CompletionStatus: f.status.value(),
	}
}

// input returns the text input for field, or nil for choice fields.
func (f *form) input(field formField) *textinput.Model {
	switch field {
	case fieldTitle:
		return &f.title
	case fieldDescription:
		return &f.description
	case fieldDueDate:
		return &f.dueDate
	}
	return nil
}

// setFocus moves focus to field. Only the focused input accepts keys.
func (f *form) setFocus(field formField) {
	if in := f.input(f.focus); in != nil {
		in.Blur()
	}
	f.focus = field
	if in := f.input(field); in != nil {
		in.Focus()
	}
}

func (f *form) cycle(delta int) {
	switch f.focus {
	case fieldCategory:
		f.category.step(delta)
	case fieldPriority:
		f.priority.step(delta)
	case fieldStatus:
		f.status.step(delta)
	}
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.Type {
	case tea.KeyEsc:
		m.form = nil
		m.screen = screenDashboard
		return m, nil
	case tea.KeyEnter:
		return m.submitForm()
	case tea.KeyTab, tea.KeyDown:
		f.setFocus((f.focus + 1) % fieldCount)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return m, nil
	}

	in := f.input(f.focus)
	if in == nil {
		switch msg.Type {
		case tea.KeyLeft:
			f.cycle(-1)
		case tea.KeyRight:
			f.cycle(1)
		}
		return m, nil
	}

	if msg.Type == tea.KeySpace {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	t := f.task()
	if err := task.Validate(t); err != nil {
		f.err = err
		return m, nil
	}

	if f.editing {
		if !m.store.UpdateTask(f.original, t) {
			m.notice = fmt.Sprintf("%q no longer exists; nothing was changed.", f.original.Title)
		} else {
			m.notice = fmt.Sprintf("Updated %q", t.Title)
		}
	} else {
		full := m.store.Len() >= store.MaxTasks
		m.store.AddTask(t)
		if full {
			m.notice = fmt.Sprintf("Task list was full and has been cleared; added %q", t.Title)
		} else {
			m.notice = fmt.Sprintf("Added %q", t.Title)
		}
	}

	m.form = nil
	m.screen = screenDashboard
	m.afterMutation()
	return m, nil
}

func (m *Model) viewForm(b *strings.Builder) {
	f := m.form
	heading := "New Task"
	if f.editing {
		heading = "Edit Task: " + f.original.Title
	}
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n\n")

	for i := formField(0); i < fieldCount; i++ {
		marker := "  "
		label := fmt.Sprintf("%-12s", fieldLabels[i])
		if i == f.focus {
			marker = "> "
			label = selectedStyle.Render(label)
		}
		b.WriteString(marker + label + " " + f.display(i, i == f.focus) + "\n")
	}
	b.WriteString("\n")

	if f.err != nil {
		for _, line := range errorLines(f.err) {
			b.WriteString(errorStyle.Render("  " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("tab/shift+tab move | left/right change choices | enter save | esc cancel"))
	b.WriteString("\n")
}

func (f *form) display(field formField, focused bool) string {
	switch field {
	case fieldTitle, fieldDescription, fieldDueDate:
		return f.input(field).View()
	case fieldCategory:
		return choice(f.category.value(), focused)
	case fieldPriority:
		return choice(f.priority.value(), focused)
	case fieldStatus:
		return choice(f.status.value(), focused)
	}
	return ""
}

func choice(v string, focused bool) string {
	if focused {
		return "< " + v + " >"
	}
	return v
}

// errorLines splits a joined validation error into one line per problem.
func errorLines(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var lines []string
		for _, e := range joined.Unwrap() {
			lines = append(lines, e.Error())
		}
		return lines
	}
	return strings.Split(err.Error(), "\n")
}
