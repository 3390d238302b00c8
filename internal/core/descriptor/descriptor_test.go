package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDescriptor() ModuleDescriptor {
	return ModuleDescriptor{
		Name:                      "TestModule",
		PrecompiledHeaderMode:     PCHNoPCHs,
		PublicDependencies:        []string{"Core"},
		PrivateDependencies:       []string{"Engine", "Slate", "Engine"},
		PrivateIncludePathModules: []string{"LiveCoding"},
	}
}

// TestModuleDescriptor_Clone_IsIndependent tests that a clone shares no list storage
func TestModuleDescriptor_Clone_IsIndependent(t *testing.T) {
	original := newTestDescriptor()
	clone := original.Clone()

	require.True(t, original.Equal(clone), "Clone should equal original")

	clone.PrivateDependencies[0] = "Changed"
	clone.PublicDependencies = append(clone.PublicDependencies, "Extra")

	assert.Equal(t, "Engine", original.PrivateDependencies[0], "Mutating clone must not affect original")
	assert.Equal(t, []string{"Core"}, original.PublicDependencies)
	assert.NotNil(t, clone.DynamicallyLoadedModules, "Clone should normalise nil lists to empty")
	assert.Empty(t, clone.DynamicallyLoadedModules)
}

// TestModuleDescriptor_Equal_RespectsOrder tests that list order is significant
func TestModuleDescriptor_Equal_RespectsOrder(t *testing.T) {
	a := newTestDescriptor()
	b := newTestDescriptor()
	b.PrivateDependencies = []string{"Slate", "Engine", "Engine"}

	assert.False(t, a.Equal(b), "Reordered lists should not be equal")

	c := newTestDescriptor()
	c.UseUnityBuild = true
	assert.False(t, a.Equal(c), "Flag difference should not be equal")
}

func TestModuleDescriptor_Lookups(t *testing.T) {
	d := newTestDescriptor()

	assert.True(t, d.HasPrivateDependency("Slate"))
	assert.False(t, d.HasPrivateDependency("Core"))
	assert.True(t, d.HasPrivateIncludePathModule("LiveCoding"))
	assert.True(t, d.PrecompiledHeaderMode.Disabled())
	assert.Equal(t, "TestModule: public=1 private=3 include_path=1 dynamic=0 pch=NoPCHs unity=false", d.String())
}

// TestDiff_SetSemantics_ReportsMembershipChanges tests the set comparison between descriptors
func TestDiff_SetSemantics_ReportsMembershipChanges(t *testing.T) {
	from := newTestDescriptor()
	to := newTestDescriptor()
	to.PrivateDependencies = []string{"Slate", "Engine", "ToolWidgets", "ToolWidgets"}
	to.PrivateIncludePathModules = nil

	diff := Diff(from, to)

	require.Len(t, diff.Changes, 4)
	assert.False(t, diff.Empty())

	assert.Equal(t, "public_dependencies", diff.Changes[0].List)
	assert.True(t, diff.Changes[0].Empty())

	assert.Equal(t, "private_dependencies", diff.Changes[1].List)
	assert.Equal(t, []string{"ToolWidgets"}, diff.Changes[1].Added, "Duplicates should be reported once")
	assert.Empty(t, diff.Changes[1].Removed, "Reordering is not a removal")

	assert.Equal(t, "private_include_path_modules", diff.Changes[2].List)
	assert.Equal(t, []string{"LiveCoding"}, diff.Changes[2].Removed)
}

func TestDiff_IdenticalDescriptors_IsEmpty(t *testing.T) {
	d := newTestDescriptor()
	assert.True(t, Diff(d, d.Clone()).Empty())
}
