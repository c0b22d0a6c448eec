package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/nibzard/plantivity-go/internal/appdir"
)

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	names := []string{appdir.ConfigFile, "." + appdir.ConfigFile}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file.
// Checks ~/.plantivity/plantivity.toml first, then falls back to OS-specific
// config directories if ~/.plantivity doesn't exist.
func findUserConfigFile() string {
	if dir := appdir.UserDir(); dir != "" {
		userConfigPath := filepath.Join(dir, appdir.ConfigFile)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	if cfgDir := osUserConfigDir(); cfgDir != "" {
		userConfigPath := filepath.Join(cfgDir, appdir.AppName, appdir.ConfigFile)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	return ""
}

// UserConfigPath returns where `plantivity config init` writes the user config.
func UserConfigPath() string {
	if dir := appdir.UserDir(); dir != "" {
		return filepath.Join(dir, appdir.ConfigFile)
	}
	return appdir.ConfigPath(".")
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DataFile = DefaultDataFile
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}

// Value returns the effective value of a tracked field for display.
func (c *Config) Value(field string) string {
	switch field {
	case "data_file":
		return c.DataFile
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return boolString(c.LogTimestamps)
	case "log_caller":
		return boolString(c.LogCaller)
	}
	return ""
}

// Fields returns the tracked field names in display order.
func Fields() []string {
	return configFields()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
