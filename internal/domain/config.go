package domain

import (
	"fmt"
	"path/filepath"
	"slices"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings       []string          `toml:"-"`
	DefaultCommand string            `toml:"default_command,omitempty"` // Command run when no arguments are given
	UsageFile      string            `toml:"usage_file,omitempty"`      // File printed instead of the built-in usage text
	Format         string            `toml:"format,omitempty"`          // Output format: text, json, yaml, toml
	Interactive    InteractiveConfig `toml:"interactive"`
	Log            LogConfig         `toml:"log"`
}

// InteractiveConfig holds settings from the [interactive] section.
type InteractiveConfig struct {
	HistoryFile string `toml:"history_file,omitempty"` // Readline history file; empty disables history
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Formats returns all supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatTOML}
}

// ValidateFormat returns ErrUnknownFormat when format is not supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats(), format) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, format, Formats())
	}
	return nil
}

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultCommand  = CommandUsage
)

// Directory and file names for tempconv.
const (
	AppDirName          = "tempconv"       // Directory name under the user config home
	ConfigFileName      = "config.toml"    // Global config file name
	LocalConfigFileName = ".tempconv.toml" // Config file name in the working directory
)

// GlobalConfigDir returns the global tempconv directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// LocalConfigPath returns the config path inside dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		DefaultCommand: DefaultCommand,
		UsageFile:      DefaultUsageFile,
		Format:         FormatText,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate resets invalid values to their defaults and records a warning for each.
func (c *Config) Validate() {
	action, err := ParseAction(c.DefaultCommand)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid default_command %q, using %q", c.DefaultCommand, DefaultCommand))
		c.DefaultCommand = DefaultCommand
	} else if _, converts := action.Scale(); converts {
		c.Warnings = append(c.Warnings, fmt.Sprintf("default_command %q needs a degree value, using %q", c.DefaultCommand, DefaultCommand))
		c.DefaultCommand = DefaultCommand
	}
	if err := ValidateFormat(c.Format); err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid format %q, using %q", c.Format, FormatText))
		c.Format = FormatText
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid log level %q, using %q", c.Log.Level, DefaultLogLevel))
		c.Log.Level = DefaultLogLevel
	}
}
