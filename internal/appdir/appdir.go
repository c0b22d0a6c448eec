// Package appdir provides constants and utilities for the .plantivity directory structure.
package appdir

import (
	"os"
	"path/filepath"
)

const (
	// Dir is the name of the plantivity state directory.
	Dir = ".plantivity"

	// AppName is used for OS-specific config directories.
	AppName = "plantivity"

	// DataFile is the default task data file name (inside .plantivity).
	DataFile = "plantivity_data.json"

	// ConfigFile is the default config file name (inside .plantivity).
	ConfigFile = "plantivity.toml"

	// LogsDir is the default log directory name (inside .plantivity).
	LogsDir = "logs"
)

// DataPath returns the full path to the data file within a base directory.
func DataPath(baseDir string) string {
	return joinPath(baseDir, DataFile)
}

// ConfigPath returns the full path to the config file within a base directory.
func ConfigPath(baseDir string) string {
	return joinPath(baseDir, ConfigFile)
}

// LogPath returns the full path to the log directory within a base directory.
func LogPath(baseDir string) string {
	return joinPath(baseDir, LogsDir)
}

// DirPath returns the full path to the .plantivity directory within a base directory.
func DirPath(baseDir string) string {
	if baseDir == "." || baseDir == "" {
		return Dir
	}
	return filepath.Join(baseDir, Dir)
}

// UserDir returns ~/.plantivity, or "" when the home directory is unknown.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return DirPath(home)
}

func joinPath(baseDir, file string) string {
	return filepath.Join(DirPath(baseDir), file)
}
