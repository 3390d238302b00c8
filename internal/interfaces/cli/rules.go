package cli

import (
	"io"

	"github.com/spf13/cobra"

	"modulerules.dev/cli/internal/core/rules"
)

// NewRulesCommand creates the rules command
func NewRulesCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the base dependencies and conditional rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), renderRuleTable(rules.Rules()))
			return err
		},
	}
}
