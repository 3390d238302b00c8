package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// FactsFlags holds command-line flags for the facts command
type FactsFlags struct {
	FactFlags
	Format string
}

// NewFactsCommand creates the facts command
func NewFactsCommand(container *CLIContainer) *cobra.Command {
	flags := &FactsFlags{}

	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Show the merged host facts and where each came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := container.ResolutionService.LoadFacts(cmd.Context(), flags.provider(cmd, container))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ok, err := writeStructured(out, flags.Format, loaded); ok {
				return err
			}
			if flags.Format != "text" {
				return fmt.Errorf("unsupported format %q (supported: json, text, yaml)", flags.Format)
			}
			_, err = io.WriteString(out, renderSources(loaded.Snapshot))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "text", "Output format (text, json, yaml)")

	return cmd
}
