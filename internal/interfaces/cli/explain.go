package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ExplainFlags holds command-line flags for the explain command
type ExplainFlags struct {
	FactFlags
	Format string
}

// NewExplainCommand creates the explain command
func NewExplainCommand(container *CLIContainer) *cobra.Command {
	flags := &ExplainFlags{}

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show which dependency rules fire for the host build",
		Long: `Evaluate every dependency rule against the host build facts and show
whether it fired and what it contributed to the descriptor.

Examples:
  mr explain --target Editor --engine-version 5.3
  mr explain --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := container.ResolutionService.Resolve(cmd.Context(), flags.provider(cmd, container))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ok, err := writeStructured(out, flags.Format, res); ok {
				return err
			}
			if flags.Format != "text" {
				return fmt.Errorf("unsupported format %q (supported: json, text, yaml)", flags.Format)
			}
			_, err = io.WriteString(out, renderExplanation(res))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "text", "Output format (text, json, yaml)")

	return cmd
}
