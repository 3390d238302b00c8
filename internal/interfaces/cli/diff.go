package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"modulerules.dev/cli/internal/core/facts"
)

// DiffFlags holds command-line flags for the diff command
type DiffFlags struct {
	FactFlags
	From   string
	To     string
	Format string
}

// NewDiffCommand creates the diff command
func NewDiffCommand(container *CLIContainer) *cobra.Command {
	flags := &DiffFlags{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the descriptors of two engine versions",
		Long: `Resolve the descriptor at two engine versions, keeping every other fact
the same, and show which dependencies were added or removed.

Examples:
  mr diff --from 5.3 --to 5.4
  mr diff --from 4.27 --to 5.0 --target Game`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := facts.ParseHostVersion(flags.From)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := facts.ParseHostVersion(flags.To)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			loaded, err := container.ResolutionService.LoadFacts(cmd.Context(), flags.provider(cmd, container))
			if err != nil {
				return err
			}
			cmp := container.ResolutionService.CompareVersions(loaded.Facts, from, to)

			out := cmd.OutOrStdout()
			if ok, err := writeStructured(out, flags.Format, cmp); ok {
				return err
			}
			if flags.Format != "text" {
				return fmt.Errorf("unsupported format %q (supported: json, text, yaml)", flags.Format)
			}
			_, err = io.WriteString(out, renderComparison(cmp))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.From, "from", "", "Engine version to compare from (MAJOR.MINOR)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Engine version to compare to (MAJOR.MINOR)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "text", "Output format (text, json, yaml)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
