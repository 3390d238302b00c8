package di

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"modulerules.dev/cli/internal/application/services"
	"modulerules.dev/cli/internal/infrastructure/logging"
	"modulerules.dev/cli/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	ResolutionService *services.ResolutionService

	// CLI
	CLIContainer *cli.CLIContainer

	Logger   *zap.Logger
	LogLevel zap.AtomicLevel
}

// NewContainer creates the container with logs going to stderr at the level
// named by MR_LOG_LEVEL
func NewContainer() (*Container, error) {
	return NewContainerWithOutput(os.Stderr, os.Getenv("MR_LOG_LEVEL"))
}

// NewContainerWithOutput creates the container with an explicit log sink and level name
func NewContainerWithOutput(logOut io.Writer, levelName string) (*Container, error) {
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	logger, atom := logging.New(logOut, level)
	container := &Container{
		Logger:   logger,
		LogLevel: atom,
	}
	container.initializeComponents()
	return container, nil
}

// initializeComponents initializes all components with proper dependencies
func (c *Container) initializeComponents() {
	c.ResolutionService = services.NewResolutionService(c.Logger.Named("resolve"))

	c.CLIContainer = &cli.CLIContainer{
		ResolutionService: c.ResolutionService,
		Logger:            c.Logger,
		LogLevel:          c.LogLevel,
	}

	c.Logger.Debug("dependency injection container initialized")
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.Debug("shutting down")
	// Sync on a console sink reports EINVAL on some platforms; nothing is lost.
	_ = c.Logger.Sync()
	return nil
}

// GetVersion returns version information
func (c *Container) GetVersion() map[string]string {
	return map[string]string{
		"version":    cli.Version,
		"build_time": cli.BuildTime,
	}
}
