package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nibzard/plantivity-go/internal/config"
	"github.com/nibzard/plantivity-go/internal/store"
)

// doctorCommand checks the data file, config and log directory.
func doctorCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("plantivity doctor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	w := stdout
	fmt.Fprintln(w, "Plantivity Doctor")
	fmt.Fprintln(w, "=================")
	fmt.Fprintln(w)

	allOK := true

	// Check config
	fmt.Fprintln(w, "Config:")
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "fatal":
		fmt.Fprintf(w, "  ✅ Log level: %s\n", cfg.LogLevel)
	default:
		fmt.Fprintf(w, "  ⚠️  Log level %q is unknown, using info\n", cfg.LogLevel)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json", "logfmt":
		fmt.Fprintf(w, "  ✅ Log format: %s\n", cfg.LogFormat)
	default:
		fmt.Fprintf(w, "  ⚠️  Log format %q is unknown, using text\n", cfg.LogFormat)
	}
	fmt.Fprintln(w)

	// Check data file
	fmt.Fprintf(w, "Data file: %s\n", cfg.DataFile)
	info, err := os.Stat(cfg.DataFile)
	switch {
	case err != nil && os.IsNotExist(err):
		fmt.Fprintln(w, "  ⚠️  Not found (will be created on first save)")
	case err != nil:
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		allOK = false
	default:
		result := store.Validate(cfg.DataFile)
		for _, warn := range result.Warnings {
			fmt.Fprintf(w, "  ⚠️  %s\n", warn)
		}
		if result.Valid {
			fmt.Fprintf(w, "  ✅ Valid (%d tasks)\n", result.Tasks)
		} else {
			fmt.Fprintln(w, "  ❌ Validation failed (the file will be treated as empty):")
			for _, e := range result.Errors {
				fmt.Fprintf(w, "     - %v\n", e)
			}
			allOK = false
		}
		if *verbose && result.Valid {
			for _, t := range openStore(cfg).GetAllTasks() {
				fmt.Fprintf(w, "    - [%s] %s (due %s)\n", t.CompletionStatus, t.Title, t.DueDate)
			}
		}
	}
	fmt.Fprintln(w)

	// Check log directory
	fmt.Fprintf(w, "Log directory: %s\n", cfg.LogDir)
	if info, err := os.Stat(cfg.LogDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  ⚠️  Not found (will be created by the TUI)")
		} else {
			fmt.Fprintf(w, "  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Fprintln(w, "  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	// Overall status
	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed. Plantivity may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}
