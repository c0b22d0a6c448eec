package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/plantivity-go/internal/store"
	"github.com/nibzard/plantivity-go/internal/task"
)

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}
	case "c":
		m.filter.Category = cycleFilter(m.filter.Category, task.Categories())
		m.refresh()
	case "p":
		m.filter.Priority = cycleFilter(m.filter.Priority, task.Priorities())
		m.refresh()
	case "s":
		m.filter.Status = cycleFilter(m.filter.Status, task.Statuses())
		m.refresh()
	case "x":
		m.filter = store.Filter{}
		m.refresh()
	case "a":
		m.form = newForm(m.today())
		m.screen = screenForm
	case "e", "enter":
		if t, ok := m.selected(); ok {
			m.form = editForm(t)
			m.screen = screenForm
		}
	case "d", "delete":
		if t, ok := m.selected(); ok {
			m.pendingDelete = t.Title
			m.screen = screenConfirmDelete
		}
	case " ", "space":
		if t, ok := m.selected(); ok {
			updated := t
			updated.CompletionStatus = string(task.Status(t.CompletionStatus).Next())
			m.store.UpdateTask(t, updated)
			m.afterMutation()
			m.notice = fmt.Sprintf("%q is now %s", t.Title, updated.CompletionStatus)
		}
	case "C":
		m.openCalendar()
	case "P":
		m.screen = screenProgress
	case "?":
		m.screen = screenHelp
	}
	return m, nil
}

func (m *Model) selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return task.Task{}, false
	}
	return m.rows[m.cursor], true
}

// cycleFilter steps a filter value through All followed by each known value.
func cycleFilter[T ~string](current string, values []T) string {
	if current == "" || current == store.FilterAll {
		return string(values[0])
	}
	for i, v := range values {
		if string(v) == current {
			if i+1 < len(values) {
				return string(values[i+1])
			}
			return store.FilterAll
		}
	}
	return store.FilterAll
}

func filterLabel(v string) string {
	if v == "" {
		return store.FilterAll
	}
	return v
}

func (m *Model) viewDashboard(b *strings.Builder) {
	next := "None"
	if t, ok := m.store.GetNextTask(); ok {
		next = t.Title
	}
	b.WriteString(headingStyle.Render("Next Task: ") + next + "\n")
	b.WriteString(headingStyle.Render("Progress: ") + store.FormatPercentage(m.store.GetCompletionPercentage()) + "%")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%d/%d tasks)", m.store.Len(), store.MaxTasks)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Category: %s  Priority: %s  Status: %s\n\n",
		filterLabel(m.filter.Category),
		filterLabel(m.filter.Priority),
		filterLabel(m.filter.Status),
	))

	if len(m.rows) == 0 {
		if m.filter.IsZero() {
			b.WriteString("  No tasks yet. Press a to add one.\n\n")
		} else {
			b.WriteString("  No tasks match the current filters.\n\n")
		}
	} else {
		header := fmt.Sprintf("  %-24s %-9s %-10s %-6s %s", "Title", "Category", "Due", "Prio", "Status")
		b.WriteString(dimStyle.Render(header))
		b.WriteString("\n")
		for i, t := range m.rows {
			b.WriteString(m.formatRow(t, i == m.cursor))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if t, ok := m.selected(); ok && t.Description != "" {
			b.WriteString(dimStyle.Render("  " + truncate(t.Description, 72)))
			b.WriteString("\n\n")
		}
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}
	b.WriteString(dimStyle.Render("a add | e edit | d delete | space advance | c/p/s filter | C calendar | P progress | ? help | q quit"))
	b.WriteString("\n")
}

func (m *Model) formatRow(t task.Task, selected bool) string {
	marker := "  "
	title := fmt.Sprintf("%-24s", truncate(t.Title, 24))
	if selected {
		marker = "> "
		title = selectedStyle.Render(title)
	}
	return fmt.Sprintf("%s%s %-9s %-10s %s %s",
		marker,
		title,
		truncate(t.Category, 9),
		truncate(t.DueDate, 10),
		padStyled(stylePriority(truncate(t.Priority, 6)), t.Priority, 6),
		styleStatus(t.CompletionStatus),
	)
}

// padStyled pads a rendered string to width using the unstyled text's length.
func padStyled(rendered, plain string, width int) string {
	if n := len([]rune(plain)); n < width {
		return rendered + strings.Repeat(" ", width-n)
	}
	return rendered
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
