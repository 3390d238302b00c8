package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ResolveFlags holds command-line flags for the resolve command
type ResolveFlags struct {
	FactFlags
	Format string
	Output string
}

// NewResolveCommand creates the resolve command
func NewResolveCommand(container *CLIContainer) *cobra.Command {
	flags := &ResolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the module descriptor for the host build",
		Long: `Resolve the module descriptor for the current host build facts and print it.

Examples:
  mr resolve                                   # Defaults: Editor, live coding, 5.4
  mr resolve --target Game --engine-version 4.27
  mr resolve --facts build.yaml --format yaml --output descriptor.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, container, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "json", "Output format (json, yaml, text)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the descriptor to a file instead of stdout")

	return cmd
}

func runResolve(cmd *cobra.Command, container *CLIContainer, flags *ResolveFlags) error {
	res, err := container.ResolutionService.Resolve(cmd.Context(), flags.provider(cmd, container))
	if err != nil {
		return err
	}

	if flags.Output == "" {
		return container.ResolutionService.Write(cmd.OutOrStdout(), flags.Format, res.Descriptor)
	}

	var buf bytes.Buffer
	if err := container.ResolutionService.Write(&buf, flags.Format, res.Descriptor); err != nil {
		return err
	}
	if err := writeFileAtomic(flags.Output, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}
	container.Logger.Info("descriptor written", zap.String("path", flags.Output), zap.String("format", flags.Format))
	return nil
}

// writeFileAtomic writes data next to path and renames it into place so a
// build tool never reads a half-written descriptor
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
