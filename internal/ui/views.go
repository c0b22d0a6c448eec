package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/plantivity-go/internal/calendar"
	"github.com/nibzard/plantivity-go/internal/garden"
	"github.com/nibzard/plantivity-go/internal/store"
	"github.com/nibzard/plantivity-go/internal/task"
)

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		title := m.pendingDelete
		if m.store.DeleteTask(title) {
			m.notice = fmt.Sprintf("Deleted %q", title)
		} else {
			m.notice = fmt.Sprintf("%q no longer exists", title)
		}
		m.afterMutation()
	case "n", "N", "esc", "q":
		m.notice = "Delete cancelled"
	default:
		return m, nil
	}
	m.pendingDelete = ""
	m.screen = screenDashboard
	return m, nil
}

func (m *Model) viewConfirm(b *strings.Builder) {
	b.WriteString(noticeStyle.Render(fmt.Sprintf("Delete %q? (y/n)", m.pendingDelete)))
	b.WriteString("\n")
}

// calendarState is the selected day; the month shown is the one containing it.
type calendarState struct {
	selected time.Time
}

func (m *Model) openCalendar() {
	now := m.today()
	m.cal.selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if t, ok := m.selected(); ok {
		if d, err := t.Due(); err == nil {
			m.cal.selected = d
		}
	}
	m.screen = screenCalendar
}

func (m *Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.cal.selected
	switch msg.String() {
	case "esc", "q", "C":
		m.screen = screenDashboard
	case "left", "h":
		m.cal.selected = sel.AddDate(0, 0, -1)
	case "right", "l":
		m.cal.selected = sel.AddDate(0, 0, 1)
	case "up", "k":
		m.cal.selected = sel.AddDate(0, 0, -7)
	case "down", "j":
		m.cal.selected = sel.AddDate(0, 0, 7)
	case "[":
		m.cal.selected = shiftMonth(sel, -1)
	case "]":
		m.cal.selected = shiftMonth(sel, 1)
	case "t":
		now := m.today()
		m.cal.selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return m, nil
}

// shiftMonth moves d by delta months, clamping the day to the target month's length.
func shiftMonth(d time.Time, delta int) time.Time {
	year, month := calendar.Build(d.Year(), d.Month(), nil).Shift(delta)
	target := calendar.Build(year, month, nil)
	day := d.Day()
	for day > 1 && target.Day(day) == nil {
		day--
	}
	return target.Day(day).Date
}

func (m *Model) viewCalendar(b *strings.Builder) {
	sel := m.cal.selected
	key := sel.Format(task.DateLayout)
	month := calendar.Build(sel.Year(), sel.Month(), m.store.GetAllTasks())
	grid := calendar.Render(month, dayStyle(key))

	var side strings.Builder
	side.WriteString(headingStyle.Render("Tasks on " + key))
	side.WriteString("\n\n")
	for _, line := range calendar.Listing(m.store.TasksDue(key)) {
		side.WriteString(line + "\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(strings.TrimRight(grid, "\n")),
		"  ",
		strings.TrimRight(side.String(), "\n"),
	))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("* tasks due  + all done | arrows move | [ ] month | t today | esc back"))
	b.WriteString("\n")
}

func (m *Model) viewProgress(b *strings.Builder) {
	completed := len(m.store.GetCompletedTasks())
	g := garden.Grow(completed)

	b.WriteString(headingStyle.Render("Your Garden"))
	b.WriteString("\n\n")
	b.WriteString(gardenStyle.Render(strings.TrimRight(garden.Render(g), "\n")))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Tasks completed: %d\n", completed))
	b.WriteString("Progress: " + store.FormatPercentage(m.store.GetCompletionPercentage()) + "%\n")
	if g.Planted {
		b.WriteString(garden.Summary(g) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press esc to return"))
	b.WriteString("\n")
}
