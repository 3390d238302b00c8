package descriptor

import (
	"fmt"
	"slices"
)

// PCHUsageMode controls how the host uses precompiled headers for a module
type PCHUsageMode string

const (
	PCHDefault                 PCHUsageMode = "Default"
	PCHNoSharedPCHs            PCHUsageMode = "NoSharedPCHs"
	PCHUseSharedPCHs           PCHUsageMode = "UseSharedPCHs"
	PCHUseExplicitOrSharedPCHs PCHUsageMode = "UseExplicitOrSharedPCHs"
	PCHNoPCHs                  PCHUsageMode = "NoPCHs"
)

// String returns the string representation of PCHUsageMode
func (m PCHUsageMode) String() string {
	return string(m)
}

// Disabled reports whether precompiled headers are turned off entirely
func (m PCHUsageMode) Disabled() bool {
	return m == PCHNoPCHs
}

// ModuleDescriptor is the build description the host consumes. Lists keep
// insertion order and may contain duplicates; order is part of the output
// so generated build inputs stay diff-stable.
type ModuleDescriptor struct {
	Name                      string       `json:"name" yaml:"name"`
	PrecompiledHeaderMode     PCHUsageMode `json:"precompiled_header_mode" yaml:"precompiled_header_mode"`
	UseUnityBuild             bool         `json:"use_unity_build" yaml:"use_unity_build"`
	PublicDependencies        []string     `json:"public_dependencies" yaml:"public_dependencies"`
	PrivateDependencies       []string     `json:"private_dependencies" yaml:"private_dependencies"`
	PrivateIncludePathModules []string     `json:"private_include_path_modules" yaml:"private_include_path_modules"`
	DynamicallyLoadedModules  []string     `json:"dynamically_loaded_modules" yaml:"dynamically_loaded_modules"`
}

// Clone returns a deep copy of the descriptor
func (d ModuleDescriptor) Clone() ModuleDescriptor {
	out := d
	out.PublicDependencies = cloneList(d.PublicDependencies)
	out.PrivateDependencies = cloneList(d.PrivateDependencies)
	out.PrivateIncludePathModules = cloneList(d.PrivateIncludePathModules)
	out.DynamicallyLoadedModules = cloneList(d.DynamicallyLoadedModules)
	return out
}

// Equal compares two descriptors field for field, including list order
func (d ModuleDescriptor) Equal(other ModuleDescriptor) bool {
	return d.Name == other.Name &&
		d.PrecompiledHeaderMode == other.PrecompiledHeaderMode &&
		d.UseUnityBuild == other.UseUnityBuild &&
		slices.Equal(d.PublicDependencies, other.PublicDependencies) &&
		slices.Equal(d.PrivateDependencies, other.PrivateDependencies) &&
		slices.Equal(d.PrivateIncludePathModules, other.PrivateIncludePathModules) &&
		slices.Equal(d.DynamicallyLoadedModules, other.DynamicallyLoadedModules)
}

// HasPrivateDependency reports whether name is among the private dependencies
func (d ModuleDescriptor) HasPrivateDependency(name string) bool {
	return slices.Contains(d.PrivateDependencies, name)
}

// HasPrivateIncludePathModule reports whether name is among the include-path-only modules
func (d ModuleDescriptor) HasPrivateIncludePathModule(name string) bool {
	return slices.Contains(d.PrivateIncludePathModules, name)
}

// String returns a one-line summary
func (d ModuleDescriptor) String() string {
	return fmt.Sprintf("%s: public=%d private=%d include_path=%d dynamic=%d pch=%s unity=%t",
		d.Name,
		len(d.PublicDependencies),
		len(d.PrivateDependencies),
		len(d.PrivateIncludePathModules),
		len(d.DynamicallyLoadedModules),
		d.PrecompiledHeaderMode,
		d.UseUnityBuild,
	)
}

// cloneList copies a list, returning an empty non-nil slice for nil input so
// encoders emit [] rather than null
func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
