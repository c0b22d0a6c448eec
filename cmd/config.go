package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/plantivity-go/internal/config"
)

// configCommand shows the effective configuration or, with "init", writes an
// example user config file.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	if len(args) > 0 && args[0] == "init" {
		return configInitCommand(args[1:])
	}
	if len(args) > 0 {
		return fmt.Errorf("unknown config subcommand: %s", args[0])
	}

	cfg := cws.Config
	fmt.Fprintln(stdout, "Effective configuration:")
	for _, field := range config.Fields() {
		fmt.Fprintf(stdout, "  %-15s = %-40s (%s)\n", field, cfg.Value(field), cws.Sources[field])
	}
	fmt.Fprintln(stdout)
	if len(cws.Files) == 0 {
		fmt.Fprintln(stdout, "Config files: none (run 'plantivity config init' to create one)")
		return nil
	}
	fmt.Fprintln(stdout, "Config files:")
	for _, f := range cws.Files {
		fmt.Fprintf(stdout, "  %s\n", f)
	}
	return nil
}

// configInitCommand writes config.ExampleConfig to the user config path.
func configInitCommand(args []string) error {
	fs := flag.NewFlagSet("plantivity config init", flag.ContinueOnError)
	fs.SetOutput(stderr)
	force := fs.Bool("force", false, "Overwrite an existing config file")
	path := fs.String("path", config.UserConfigPath(), "Where to write the config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if _, err := os.Stat(*path); err == nil && !*force {
		fmt.Fprintf(stdout, "Config file already exists: %s (use -force to overwrite)\n", *path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(*path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(*path, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote %s\n", *path)
	return nil
}
