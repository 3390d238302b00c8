package rules

import (
	"modulerules.dev/cli/internal/core/descriptor"
	"modulerules.dev/cli/internal/core/facts"
)

// Evaluation records how a single rule was decided for a set of facts
type Evaluation struct {
	Rule        string   `json:"rule" yaml:"rule"`
	Description string   `json:"description" yaml:"description"`
	Fired       bool     `json:"fired" yaml:"fired"`
	Contributed Fragment `json:"contributed" yaml:"contributed"`
}

// Resolve builds the module descriptor for the given facts. It is pure and
// total: the output depends only on f and every input yields a descriptor.
func Resolve(f facts.EnvironmentFacts) descriptor.ModuleDescriptor {
	return compose(Explain(f))
}

// Explain evaluates every rule against f in append order
func Explain(f facts.EnvironmentFacts) []Evaluation {
	table := Rules()
	evals := make([]Evaluation, 0, len(table))
	for _, r := range table {
		eval := Evaluation{
			Rule:        r.Name,
			Description: r.Description,
			Fired:       r.Applies(f),
		}
		if eval.Fired {
			eval.Contributed = r.Fragment
		}
		evals = append(evals, eval)
	}
	return evals
}

// compose concatenates the base lists with the fragments of fired rules
func compose(evals []Evaluation) descriptor.ModuleDescriptor {
	private := BasePrivateDependencies()
	includePath := []string{}
	for _, e := range evals {
		private = append(private, e.Contributed.PrivateDependencies...)
		includePath = append(includePath, e.Contributed.PrivateIncludePathModules...)
	}

	return descriptor.ModuleDescriptor{
		Name:                      ModuleName,
		PrecompiledHeaderMode:     descriptor.PCHNoPCHs,
		UseUnityBuild:             false,
		PublicDependencies:        BasePublicDependencies(),
		PrivateDependencies:       private,
		PrivateIncludePathModules: includePath,
		DynamicallyLoadedModules:  []string{},
	}
}
