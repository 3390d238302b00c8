package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"modulerules.dev/cli/internal/application/services"
	"modulerules.dev/cli/internal/infrastructure/logging"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	ResolutionService *services.ResolutionService
	Logger            *zap.Logger
	LogLevel          zap.AtomicLevel
}

// NewRootCommand RootCommand represents the base command when called without any subcommands
func NewRootCommand(container *CLIContainer) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "mr",
		Short: "Module rules - resolve plugin module build dependencies",
		Long: `mr resolves the build-module descriptor of the BlueprintAssist plugin
module from the facts of the host build: target type, live coding support
and engine version.

Facts are read from command-line flags, MR_* environment variables (and a
.env file), a YAML facts file, and built-in defaults, in that order of
precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyLoggingOverrides(cmd, container)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); defaults to $MR_LOG_LEVEL or warn")

	rootCmd.AddCommand(NewResolveCommand(container))
	rootCmd.AddCommand(NewExplainCommand(container))
	rootCmd.AddCommand(NewFactsCommand(container))
	rootCmd.AddCommand(NewRulesCommand(container))
	rootCmd.AddCommand(NewDiffCommand(container))
	rootCmd.AddCommand(NewExploreCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// applyLoggingOverrides adjusts the shared log level from --log-level and --debug
func applyLoggingOverrides(cmd *cobra.Command, container *CLIContainer) error {
	if cmd.Flags().Changed("log-level") {
		name, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(name)
		if err != nil {
			return err
		}
		container.LogLevel.SetLevel(level)
	}

	if debugOn, _ := cmd.Flags().GetBool("debug"); debugOn {
		container.LogLevel.SetLevel(zapcore.DebugLevel)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context, container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = container.Logger.Sync()
		os.Exit(1)
	}
	_ = container.Logger.Sync()
}
