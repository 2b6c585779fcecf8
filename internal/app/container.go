// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/tempconv/internal/domain"
	"github.com/runoshun/tempconv/internal/infra/config"
	"github.com/runoshun/tempconv/internal/infra/console"
	"github.com/runoshun/tempconv/internal/infra/filestore"
	"github.com/runoshun/tempconv/internal/infra/logging"
	"github.com/runoshun/tempconv/internal/usecase"
)

// Config holds the process-level settings the container was built with.
type Config struct {
	WorkDir string // Directory for the local config and relative usage file
	Program string // Program name shown in usage text
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Usage domain.UsageSource

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(cfg Config) *Container {
	return newWithLoader(cfg, config.NewLoader(cfg.WorkDir))
}

// newWithLoader builds the container from the configuration returned by loader.
// A config that fails to load is reported as a warning and defaults are used.
func newWithLoader(cfg Config, loader domain.ConfigLoader) *Container {
	appConfig, err := loader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, fmt.Sprintf("failed to load config: %v", err))
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Usage:     filestore.New(cfg.WorkDir, appConfig.UsageFile),
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, usage domain.UsageSource, logger *slog.Logger) *Container {
	return &Container{
		Usage:     usage,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// SetLogLevel replaces the logger with one writing to w at level.
func (c *Container) SetLogLevel(w io.Writer, level string) {
	c.Logger = logging.New(w, logging.ParseLevel(level))
}

// NewLineReader returns the reader for the interactive loop.
// Terminals get line editing and history; other inputs are read line by line.
func (c *Container) NewLineReader(stdin io.Reader, stdout, stderr io.Writer) (domain.LineReader, error) {
	if !console.IsTerminal(stdin) {
		return console.NewPrompter(stdin, stdout), nil
	}
	term, err := console.NewTerminal(console.TerminalOptions{
		Stdout:      stdout,
		Stderr:      stderr,
		HistoryFile: c.AppConfig.Interactive.HistoryFile,
	})
	if err != nil {
		return nil, err
	}
	return term, nil
}

// UseCase factory methods

// ConvertTemperatureUseCase returns a new ConvertTemperature use case.
func (c *Container) ConvertTemperatureUseCase() *usecase.ConvertTemperature {
	return usecase.NewConvertTemperature(c.Logger)
}

// ShowTableUseCase returns a new ShowTable use case.
func (c *Container) ShowTableUseCase() *usecase.ShowTable {
	return usecase.NewShowTable(c.Logger)
}

// ShowUsageUseCase returns a new ShowUsage use case.
func (c *Container) ShowUsageUseCase() *usecase.ShowUsage {
	return usecase.NewShowUsage(c.Usage, c.Logger)
}

// RunInteractiveUseCase returns a new RunInteractive use case.
// stdout and stderr are the writers for loop output and diagnostics.
func (c *Container) RunInteractiveUseCase(reader domain.LineReader, stdout, stderr io.Writer) *usecase.RunInteractive {
	return usecase.NewRunInteractive(reader, stdout, stderr, c.Logger)
}
