// Package cmd implements the CLI command structure for plantivity.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/plantivity-go/internal/config"
	"github.com/nibzard/plantivity-go/internal/logging"
	"github.com/nibzard/plantivity-go/internal/store"
	"github.com/nibzard/plantivity-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Output streams and clock, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	now              = time.Now
)

// Run executes the plantivity CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("plantivity", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand
	// If no args or first arg is a flag, use "tui" as default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	// Execute the subcommand
	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "ls", "list":
		return lsCommand(cfg, remainingArgs)
	case "add":
		return addCommand(cfg, remainingArgs)
	case "edit":
		return editCommand(cfg, remainingArgs)
	case "rm", "delete":
		return rmCommand(cfg, remainingArgs)
	case "done":
		return doneCommand(cfg, remainingArgs)
	case "next":
		return nextCommand(cfg, remainingArgs)
	case "progress":
		return progressCommand(cfg, remainingArgs)
	case "calendar", "cal":
		return calendarCommand(cfg, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "logs":
		return logsCommand(ctx, cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand launches the interactive interface. The TUI owns the terminal,
// so its log lines go to a per-run file under the log directory.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plantivity tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var logger *log.Logger
	runLog, err := logging.NewRunLog(cfg.LogDir)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: session log disabled: %v\n", err)
		logger = log.New(io.Discard)
	} else {
		defer runLog.Close()
		logger = newLogger(cfg, runLog.Writer())
	}

	s := store.New(cfg.DataFile, store.WithLogger(logger))
	logger.Info("Starting TUI", "data", cfg.DataFile, "tasks", s.Len())
	if err := ui.Run(ctx, s); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// newLogger builds the logger described by cfg.
func newLogger(cfg *config.Config, w io.Writer) *log.Logger {
	return logging.FromConfig(w, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
}

// openStore loads the data file for a one-shot command, logging to stderr.
func openStore(cfg *config.Config) *store.Store {
	return store.New(cfg.DataFile, store.WithLogger(newLogger(cfg, stderr)))
}

// warnIfUnsaved reports a failed write after a mutating command. The change
// stays in effect for this process only.
func warnIfUnsaved(s *store.Store) {
	if err := s.LastSaveError(); err != nil {
		fmt.Fprintf(stderr, "Warning: changes were not saved to %s: %v\n", s.Path(), err)
	}
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Fprintf(stdout, "plantivity version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Plantivity - a task tracker that grows a garden as you get things done")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  plantivity [global options] [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                 Launch the terminal UI (default command)")
	fmt.Fprintln(w, "  ls                  List tasks")
	fmt.Fprintln(w, "  add -title TITLE    Add a task")
	fmt.Fprintln(w, "  edit TITLE          Edit the first task with TITLE")
	fmt.Fprintln(w, "  rm TITLE            Delete the first task with TITLE")
	fmt.Fprintln(w, "  done TITLE          Mark the first task with TITLE as completed")
	fmt.Fprintln(w, "  next                Show the next task to work on")
	fmt.Fprintln(w, "  progress            Show completion progress and the garden")
	fmt.Fprintln(w, "  calendar            Show a month calendar of due dates")
	fmt.Fprintln(w, "  doctor              Check the data file, config and log directory")
	fmt.Fprintln(w, "  config [init]       Show effective configuration or write an example file")
	fmt.Fprintln(w, "  logs                Print the latest TUI session log")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -category, -priority, -status string")
	fmt.Fprintln(w, "        Only show matching tasks (All matches anything)")
	fmt.Fprintln(w, "  -v    Show descriptions")
	fmt.Fprintln(w, "  -o string           Output format: table, json or yaml (default table)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add/Edit Options:")
	fmt.Fprintln(w, "  -title, -desc string")
	fmt.Fprintln(w, "  -category string    School, Work, Personal, Health or Other")
	fmt.Fprintln(w, "  -due string         Due date as YYYY-MM-DD (add defaults to today)")
	fmt.Fprintln(w, "  -priority string    High, Medium or Low")
	fmt.Fprintln(w, "  -status string      Not Started, In Progress or Completed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Calendar Options:")
	fmt.Fprintln(w, "  -month YYYY-MM      Month to show (default current month)")
	fmt.Fprintln(w, "  -day YYYY-MM-DD     Also list the tasks due that day")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logs Options:")
	fmt.Fprintln(w, "  -n int              Number of lines to show (0 = all)")
	fmt.Fprintln(w, "  -f, -follow         Follow the log (like tail -f)")
}
