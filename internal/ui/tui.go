// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/plantivity-go/internal/store"
	"github.com/nibzard/plantivity-go/internal/task"
)

// Option configures the TUI model.
type Option func(*Model)

// WithClock overrides the clock used for "today" in the form and calendar.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// Run starts the TUI on the given store.
func Run(ctx context.Context, s *store.Store, opts ...Option) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	program := tea.NewProgram(New(s, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type screen int

const (
	screenDashboard screen = iota
	screenForm
	screenConfirmDelete
	screenCalendar
	screenProgress
	screenHelp
)

// Model is the root bubbletea model. Every view shares one store.
type Model struct {
	store  *store.Store
	screen screen
	now    func() time.Time

	width  int
	height int

	// dashboard
	filter store.Filter
	rows   []task.Task
	cursor int

	form          *form
	pendingDelete string
	cal           calendarState

	notice  string
	saveErr error
}

// New creates the root model for s.
func New(s *store.Store, opts ...Option) *Model {
	m := &Model{
		store: s,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenForm:
			return m.updateForm(msg)
		case screenConfirmDelete:
			return m.updateConfirm(msg)
		case screenCalendar:
			return m.updateCalendar(msg)
		case screenProgress, screenHelp:
			switch msg.String() {
			case "esc", "q", "?", "P", "enter":
				m.screen = screenDashboard
			}
			return m, nil
		default:
			return m.updateDashboard(msg)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Plantivity"))
	b.WriteString("\n\n")

	if m.saveErr != nil {
		b.WriteString(errorStyle.Render("Changes not saved: " + m.saveErr.Error()))
		b.WriteString("\n\n")
	}

	switch m.screen {
	case screenForm:
		m.viewForm(&b)
	case screenConfirmDelete:
		m.viewConfirm(&b)
	case screenCalendar:
		m.viewCalendar(&b)
	case screenProgress:
		m.viewProgress(&b)
	case screenHelp:
		writeHelp(&b)
	default:
		m.viewDashboard(&b)
	}
	return b.String()
}

// refresh reloads dashboard rows from the store and keeps the cursor in range.
func (m *Model) refresh() {
	m.rows = m.store.Filter(m.filter)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// afterMutation records the outcome of the last store write and refreshes rows.
func (m *Model) afterMutation() {
	m.saveErr = m.store.LastSaveError()
	m.refresh()
}

func (m *Model) today() time.Time {
	return m.now()
}

func writeHelp(b *strings.Builder) {
	b.WriteString(headingStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString("Dashboard\n")
	b.WriteString("  k/up, j/down  Move selection\n")
	b.WriteString("  a             Add a task\n")
	b.WriteString("  e, enter      Edit the selected task\n")
	b.WriteString("  d             Delete the selected task\n")
	b.WriteString("  space         Advance status (Not Started, In Progress, Completed)\n")
	b.WriteString("  c / p / s     Cycle category / priority / status filter\n")
	b.WriteString("  x             Clear filters\n")
	b.WriteString("  C             Calendar\n")
	b.WriteString("  P             Progress garden\n")
	b.WriteString("  ?             Toggle this help screen\n")
	b.WriteString("  q, ctrl+c     Quit\n\n")
	b.WriteString("Form\n")
	b.WriteString("  tab, shift+tab  Next / previous field\n")
	b.WriteString("  left, right     Change choice fields\n")
	b.WriteString("  enter           Save\n")
	b.WriteString("  esc             Cancel\n\n")
	b.WriteString("Calendar\n")
	b.WriteString("  arrows, h/j/k/l  Move the selected day\n")
	b.WriteString("  [ / ]            Previous / next month\n")
	b.WriteString("  t                Jump to today\n")
	b.WriteString("  esc, q           Back\n\n")
	b.WriteString(dimStyle.Render("Press esc to return"))
	b.WriteString("\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
