// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.plantivity/plantivity.toml or OS-specific config directory)
// 3. Project config file (plantivity.toml or .plantivity.toml in the working directory)
// 4. A .env file in the working directory (only PLANTIVITY_* keys are used)
// 5. Environment variables (PLANTIVITY_*)
// 6. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.plantivity/plantivity.toml (preferred)
// - Windows: %APPDATA%\plantivity\plantivity.toml
// - macOS: ~/Library/Application Support/plantivity/plantivity.toml
// - Linux/BSD: $XDG_CONFIG_HOME/plantivity/plantivity.toml or ~/.config/plantivity/plantivity.toml
//
// Project-level config locations (overrides user config):
// - ./plantivity.toml (preferred)
// - ./.plantivity.toml
package config
