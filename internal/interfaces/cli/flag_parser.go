package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	configdomain "modulerules.dev/cli/internal/core/domain/config"
	"modulerules.dev/cli/internal/core/facts"
	configports "modulerules.dev/cli/internal/core/ports/config"
	configinfra "modulerules.dev/cli/internal/infrastructure/config"
)

// FactFlags holds the command-line flags that describe the host build
type FactFlags struct {
	Target        string
	LiveCoding    bool
	EngineVersion string
	FactsFile     string
	DotenvFile    string
}

// register adds the fact flags to cmd
func (f *FactFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Target, "target", "", "Target type (Game, Editor, Server, Client, Program)")
	cmd.Flags().BoolVar(&f.LiveCoding, "live-coding", false, "Whether the host supports live coding")
	cmd.Flags().StringVar(&f.EngineVersion, "engine-version", "", "Host engine version as MAJOR.MINOR")
	cmd.Flags().StringVar(&f.FactsFile, "facts", "", "YAML facts file (default "+configinfra.DefaultFactsFile+" if present)")
	cmd.Flags().StringVar(&f.DotenvFile, "env-file", ".env", "Dotenv file with MR_* variables; empty to skip")
}

// overrides returns only the flags the user actually set, keyed by field
func (f *FactFlags) overrides(cmd *cobra.Command) (map[string]string, map[string]string) {
	values := map[string]string{}
	names := map[string]string{}
	set := func(flag, field, value string) {
		if cmd.Flags().Changed(flag) {
			values[field] = value
			names[field] = "--" + flag
		}
	}
	set("target", configdomain.FieldTargetType, f.Target)
	set("live-coding", configdomain.FieldLiveCoding, strconv.FormatBool(f.LiveCoding))
	set("engine-version", configdomain.FieldHostVersion, f.EngineVersion)
	return values, names
}

// provider builds the layered facts loader for one command invocation
func (f *FactFlags) provider(cmd *cobra.Command, container *CLIContainer) configports.FactsProvider {
	factsFile, required := configinfra.DefaultFactsFile, false
	if cmd.Flags().Changed("facts") {
		factsFile, required = f.FactsFile, true
	}
	values, names := f.overrides(cmd)

	return configinfra.NewUnifiedLoader(container.Logger,
		configinfra.NewDefaultLoader(facts.DefaultEnvironmentFacts()),
		configinfra.NewFileLoader(factsFile, required),
		configinfra.NewEnvLoader(f.DotenvFile),
		configinfra.NewFlagLoader(values, names),
	)
}
