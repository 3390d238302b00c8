package rules

import (
	"modulerules.dev/cli/internal/core/facts"
)

// ModuleName is the name of the plugin module the rules describe
const ModuleName = "BlueprintAssist"

var basePublicDependencies = [...]string{
	"Core",
}

// CoreUObject appears twice in the host's own rules file and is kept that
// way so the generated list matches it entry for entry.
var basePrivateDependencies = [...]string{
	"CoreUObject",
	"Engine",
	"Slate",
	"SlateCore",
	"GraphEditor",
	"Kismet",
	"KismetWidgets",
	"InputCore",
	"BlueprintGraph",
	"AssetTools",
	"EditorStyle",
	"EditorWidgets",
	"UnrealEd",
	"Projects",
	"Json",
	"JsonUtilities",
	"EngineSettings",
	"AssetRegistry",
	"Persona",
	"WorkspaceMenuStructure",
	"ToolMenus",
	"UMG",
	"RenderCore",
	"DeveloperSettings",
	"CoreUObject",
	"Blutility",
	"UMGEditor",
	"PropertyEditor",
	"ApplicationCore",
	"AudioEditor",
	"AssetSearch",
}

// BasePublicDependencies returns a copy of the unconditional public dependencies
func BasePublicDependencies() []string {
	return append([]string(nil), basePublicDependencies[:]...)
}

// BasePrivateDependencies returns a copy of the unconditional private dependencies
func BasePrivateDependencies() []string {
	return append([]string(nil), basePrivateDependencies[:]...)
}

// Fragment is what a rule contributes when its predicate holds
type Fragment struct {
	PrivateDependencies       []string `json:"private_dependencies,omitempty" yaml:"private_dependencies,omitempty"`
	PrivateIncludePathModules []string `json:"private_include_path_modules,omitempty" yaml:"private_include_path_modules,omitempty"`
}

// Predicate decides whether a rule applies to the given facts
type Predicate func(facts.EnvironmentFacts) bool

// Rule pairs a predicate with the fragment it appends
type Rule struct {
	Name        string
	Description string
	Applies     Predicate
	Fragment    Fragment
}

// Rules returns the conditional rules in append order. Each call builds a
// fresh table so callers cannot alter resolution by mutating the result.
func Rules() []Rule {
	return []Rule{
		{
			Name:        "editor-message-log",
			Description: "target type is Editor",
			Applies: func(f facts.EnvironmentFacts) bool {
				return f.TargetType.IsEditor()
			},
			Fragment: Fragment{PrivateDependencies: []string{"MessageLog"}},
		},
		{
			Name:        "live-coding",
			Description: "live coding is enabled",
			Applies: func(f facts.EnvironmentFacts) bool {
				return f.LiveCodingEnabled
			},
			Fragment: Fragment{PrivateIncludePathModules: []string{"LiveCoding"}},
		},
		{
			Name:        "engine-5",
			Description: "host major version >= 5",
			Applies: func(f facts.EnvironmentFacts) bool {
				return f.HostVersion.Major >= 5
			},
			Fragment: Fragment{PrivateDependencies: []string{
				"ContentBrowserData",
				"SubobjectEditor",
				"SubobjectDataInterface",
				"EditorFramework",
			}},
		},
		{
			// Compound on purpose: a 4.x host never picks these up, whatever its minor version.
			Name:        "engine-5-4",
			Description: "host major version >= 5 and minor version >= 4",
			Applies: func(f facts.EnvironmentFacts) bool {
				return f.HostVersion.Major >= 5 && f.HostVersion.Minor >= 4
			},
			Fragment: Fragment{PrivateDependencies: []string{
				"ToolWidgets",
				"AssetDefinition",
				"ContentBrowser",
				"MaterialEditor",
			}},
		},
	}
}
