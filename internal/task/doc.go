// Package task defines the task record and its enumerated fields.
//
// A Task is stored exactly as the user entered it: every field is a plain
// string so that values outside the known sets still round-trip through the
// data file. The enumerated types in this package are used at the boundary,
// where the UI and CLI parse user input before building a Task:
//
//	cat, err := task.ParseCategory("work")     // task.CategoryWork
//	pri, err := task.ParsePriority("High")     // task.PriorityHigh
//	st, err := task.ParseStatus("in progress") // task.StatusInProgress
//
// # Categories
//
//   - School, Work, Personal, Health, Other
//
// # Priorities
//
//   - High, Medium, Low
//
// # Completion Status
//
//   - "Not Started": default for new tasks
//   - "In Progress"
//   - "Completed": counts toward completion percentage and plant growth
//
// Status transitions are not enforced; any status may replace any other.
//
// # Due Dates
//
// Due dates use the YYYY-MM-DD layout (DateLayout). Because the layout is
// zero-padded and most-significant first, comparing two valid due dates as
// strings orders them chronologically.
package task
