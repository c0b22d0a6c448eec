package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/nibzard/plantivity-go/internal/calendar"
	"github.com/nibzard/plantivity-go/internal/config"
	"github.com/nibzard/plantivity-go/internal/garden"
	"github.com/nibzard/plantivity-go/internal/store"
	"github.com/nibzard/plantivity-go/internal/task"
)

// progressCommand prints the completion percentage and the garden.
func progressCommand(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	s := openStore(cfg)
	completed := len(s.GetCompletedTasks())
	g := garden.Grow(completed)

	fmt.Fprintf(stdout, "Progress: %s%% (%d of %d tasks completed)\n\n",
		store.FormatPercentage(s.GetCompletionPercentage()), completed, s.Len())
	fmt.Fprint(stdout, garden.Render(g))
	if g.Planted {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, garden.Summary(g))
	}
	return nil
}

// calendarCommand prints a month grid, and the tasks of one day if asked.
func calendarCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plantivity calendar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	monthArg := fs.String("month", "", "Month to show (YYYY-MM)")
	dayArg := fs.String("day", "", "List tasks due on this day (YYYY-MM-DD)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	today := now()
	year, month := today.Year(), today.Month()
	var day time.Time
	if *dayArg != "" {
		d, err := task.ParseDueDate(*dayArg)
		if err != nil {
			return fmt.Errorf("invalid -day: %w", err)
		}
		day = d
		year, month = d.Year(), d.Month()
	}
	if *monthArg != "" {
		m, err := time.Parse("2006-01", *monthArg)
		if err != nil {
			return fmt.Errorf("invalid -month %q: expected YYYY-MM", *monthArg)
		}
		year, month = m.Year(), m.Month()
	}

	s := openStore(cfg)
	fmt.Fprint(stdout, calendar.Render(calendar.Build(year, month, s.GetAllTasks()), calendar.PlainStyle))
	fmt.Fprintln(stdout, "* tasks due   + all completed")

	if !day.IsZero() {
		key := day.Format(task.DateLayout)
		fmt.Fprintf(stdout, "\nTasks on %s:\n", key)
		for _, line := range calendar.Listing(s.TasksDue(key)) {
			fmt.Fprintf(stdout, "  %s\n", line)
		}
	}
	return nil
}
