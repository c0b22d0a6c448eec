package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Plantivity configuration file
# Values can be overridden by environment variables (PLANTIVITY_*) or CLI flags

# Task data file (supports ~ expansion and %VAR% on Windows)
data_file = "~/.plantivity/plantivity_data.json"

# Log directory for interactive sessions
log_dir = "~/.plantivity/logs"

# Log level: debug, info, warn, error
log_level = "info"

# Log format: text, json, logfmt
log_format = "text"

# Show timestamps and caller location in log lines
log_timestamps = false
log_caller = false
`
}
