package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/vk/drover/internal/executor"
	"github.com/vk/drover/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	runner   executor.Runner
}

// NewApp is the constructor for the main application. Operator-facing output
// (command echo, plan and target listings) goes to outW; log records go to
// errW. The registry must be fully constructed before it is handed over; the
// app never mutates it.
func NewApp(outW, errW io.Writer, appConfig *Config, reg *registry.Registry) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		runner: &executor.Shell{
			Stdin:  os.Stdin,
			Stdout: outW,
			Stderr: errW,
		},
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
