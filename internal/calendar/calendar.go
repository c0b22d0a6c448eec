// Package calendar lays tasks out on a month grid.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/nibzard/plantivity-go/internal/task"
)

// Tag marks how a day is highlighted.
type Tag int

const (
	TagNone Tag = iota
	TagTask // at least one incomplete task is due
	TagDone // tasks are due and all are completed
)

// Day is one cell of the month grid.
type Day struct {
	Date  time.Time
	Tag   Tag
	Tasks []task.Task
}

// Key returns the day in due-date form.
func (d Day) Key() string {
	return d.Date.Format(task.DateLayout)
}

// Month is a calendar month with its task highlights. Weeks start on Sunday;
// cells outside the month are nil.
type Month struct {
	Year  int
	Month time.Month
	Weeks [][7]*Day
}

// Build lays out year/month and tags every day that has tasks due. Tasks whose
// due date does not parse are skipped.
func Build(year int, month time.Month, tasks []task.Task) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	m := Month{Year: first.Year(), Month: first.Month()}

	byDate := make(map[string][]task.Task)
	for _, t := range tasks {
		d, err := t.Due()
		if err != nil {
			continue
		}
		key := d.Format(task.DateLayout)
		byDate[key] = append(byDate[key], t)
	}

	var week [7]*Day
	col := int(first.Weekday())
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		day := &Day{Date: d}
		day.Tasks = byDate[day.Key()]
		day.Tag = tagFor(day.Tasks)
		week[col] = day
		col++
		if col == 7 {
			m.Weeks = append(m.Weeks, week)
			week = [7]*Day{}
			col = 0
		}
	}
	if col > 0 {
		m.Weeks = append(m.Weeks, week)
	}
	return m
}

func tagFor(tasks []task.Task) Tag {
	if len(tasks) == 0 {
		return TagNone
	}
	for _, t := range tasks {
		if !t.IsCompleted() {
			return TagTask
		}
	}
	return TagDone
}

// Day returns the cell for day-of-month n, or nil when out of range.
func (m Month) Day(n int) *Day {
	for _, w := range m.Weeks {
		for _, d := range w {
			if d != nil && d.Date.Day() == n {
				return d
			}
		}
	}
	return nil
}

// Title returns e.g. "March 2025".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Shift returns the year and month delta months away from m.
func (m Month) Shift(delta int) (int, time.Month) {
	d := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return d.Year(), d.Month()
}

// StyleFunc renders a day number cell. The cell text is already padded to
// three columns.
type StyleFunc func(d *Day, cell string) string

// PlainStyle marks task days with "*" and completed days with "+".
func PlainStyle(d *Day, cell string) string {
	switch d.Tag {
	case TagTask:
		return strings.TrimRight(cell, " ") + "*"
	case TagDone:
		return strings.TrimRight(cell, " ") + "+"
	default:
		return cell
	}
}

const weekHeader = "Su  Mo  Tu  We  Th  Fr  Sa"

// Render draws m as a text grid. Each cell is four columns wide.
func Render(m Month, style StyleFunc) string {
	if style == nil {
		style = PlainStyle
	}

	var b strings.Builder
	title := m.Title()
	pad := (len(weekHeader) - len(title)) / 2
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title + "\n")
	b.WriteString(weekHeader + "\n")

	for _, w := range m.Weeks {
		var line strings.Builder
		for i, d := range w {
			if i > 0 {
				line.WriteString(" ")
			}
			if d == nil {
				line.WriteString("   ")
				continue
			}
			line.WriteString(style(d, fmt.Sprintf("%2d ", d.Date.Day())))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// Line formats a task for a per-day listing.
func Line(t task.Task) string {
	return fmt.Sprintf("%s — %s — %s — %s", t.Title, t.Category, t.Priority, t.CompletionStatus)
}

// NoTasksMessage is listed for a day without tasks.
const NoTasksMessage = "No tasks on this date."

// Listing returns the lines shown for one day's tasks.
func Listing(tasks []task.Task) []string {
	if len(tasks) == 0 {
		return []string{NoTasksMessage}
	}
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = Line(t)
	}
	return lines
}
