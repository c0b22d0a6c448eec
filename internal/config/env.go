package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDataFile      = "PLANTIVITY_DATA"
	EnvLogDir        = "PLANTIVITY_LOG_DIR"
	EnvLogLevel      = "PLANTIVITY_LOG_LEVEL"
	EnvLogFormat     = "PLANTIVITY_LOG_FORMAT"
	EnvLogTimestamps = "PLANTIVITY_LOG_TIMESTAMPS"
	EnvLogCaller     = "PLANTIVITY_LOG_CALLER"
)

// dotEnvFile is read from the current directory, below the real environment.
const dotEnvFile = ".env"

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	applyVars(cfg, sources, SourceEnv, os.Getenv)
}

// loadDotEnv applies the PLANTIVITY_* entries of a dotenv file. The process
// environment is left untouched.
func loadDotEnv(cfg *Config, path string, sources map[string]ConfigSource) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return err
	}
	applyVars(cfg, sources, SourceDotEnv, func(key string) string { return vars[key] })
	return nil
}

func findDotEnvFile() string {
	if info, err := os.Stat(dotEnvFile); err == nil && !info.IsDir() {
		return dotEnvFile
	}
	return ""
}

func applyVars(cfg *Config, sources map[string]ConfigSource, source ConfigSource, getenv func(string) string) {
	set := func(field string) {
		if sources != nil {
			sources[field] = source
		}
	}

	if v := getenv(EnvDataFile); v != "" {
		cfg.DataFile = v
		set("data_file")
	}
	if v := getenv(EnvLogDir); v != "" {
		cfg.LogDir = v
		set("log_dir")
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := getenv(EnvLogTimestamps); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := getenv(EnvLogCaller); v != "" {
		cfg.LogCaller = boolFromString(v)
		set("log_caller")
	}
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
