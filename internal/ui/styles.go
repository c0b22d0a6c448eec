package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/plantivity-go/internal/calendar"
	"github.com/nibzard/plantivity-go/internal/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	headingStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	gardenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	dayTaskStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dayDoneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	daySelectedStyle = lipgloss.NewStyle().Reverse(true)
)

var statusStyles = map[task.Status]lipgloss.Style{
	task.StatusNotStarted: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	task.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	task.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
}

var priorityStyles = map[task.Priority]lipgloss.Style{
	task.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	task.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	task.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
}

func styleStatus(s string) string {
	if st, ok := statusStyles[task.Status(s)]; ok {
		return st.Render(s)
	}
	return s
}

func stylePriority(p string) string {
	if st, ok := priorityStyles[task.Priority(p)]; ok {
		return st.Render(p)
	}
	return p
}

// dayStyle colours calendar cells by tag and reverses the selected day.
func dayStyle(selected string) calendar.StyleFunc {
	return func(d *calendar.Day, cell string) string {
		cell = calendar.PlainStyle(d, cell)
		switch d.Tag {
		case calendar.TagTask:
			cell = dayTaskStyle.Render(cell)
		case calendar.TagDone:
			cell = dayDoneStyle.Render(cell)
		}
		if d.Key() == selected {
			cell = daySelectedStyle.Render(cell)
		}
		return cell
	}
}
