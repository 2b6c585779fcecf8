// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tempconv/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the local .tempconv.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/tempconv)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// GlobalConfigDir returns the directory the global config is read from.
func (l *Loader) GlobalConfigDir() string {
	return l.globalConfDir
}

// Load returns the merged configuration.
// Local config takes precedence over global config. A file that cannot be
// read or parsed is skipped with a warning; the other files still apply.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	// Merge: default <- global <- local (later takes precedence)
	for _, load := range []func() (*domain.Config, error){l.LoadGlobal, l.LoadLocal} {
		cfg, err := load()
		switch {
		case errors.Is(err, os.ErrNotExist):
			continue
		case err != nil:
			base.Warnings = append(base.Warnings, fmt.Sprintf("ignoring config: %v", err))
			continue
		}
		base = mergeConfigs(base, cfg)
	}

	base.Validate()
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the working directory configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	return l.loadFile(domain.LocalConfigPath(l.workDir))
}

// loadFile loads a configuration from a file.
// Unknown keys do not fail the load; they are reported as warnings.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for _, key := range unknownKeys(data) {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in %s: %s", filepath.Base(path), key))
	}
	return &cfg, nil
}

// unknownKeys returns the dotted keys in data that do not map to a Config field.
func unknownKeys(data []byte) []string {
	var discard domain.Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var strictErr *toml.StrictMissingError
	if err := dec.Decode(&discard); !errors.As(err, &strictErr) {
		return nil
	}

	keys := make([]string, 0, len(strictErr.Errors))
	for i := range strictErr.Errors {
		keys = append(keys, strings.Join(strictErr.Errors[i].Key(), "."))
	}
	return keys
}

// mergeConfigs returns base with every non-empty value of override applied.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.DefaultCommand != "" {
		result.DefaultCommand = override.DefaultCommand
	}
	if override.UsageFile != "" {
		result.UsageFile = override.UsageFile
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Interactive.HistoryFile != "" {
		result.Interactive.HistoryFile = override.Interactive.HistoryFile
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	return &result
}
