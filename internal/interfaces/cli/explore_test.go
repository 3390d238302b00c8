package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modulerules.dev/cli/internal/application/services"
	"modulerules.dev/cli/internal/core/facts"
	"modulerules.dev/cli/internal/core/testfixtures"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m exploreModel, keys ...string) exploreModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyPress(k))
		var ok bool
		m, ok = next.(exploreModel)
		require.True(t, ok)
	}
	return m
}

// TestExploreModel_Keys_ReResolve tests that each key changes the facts and refreshes the descriptor
func TestExploreModel_Keys_ReResolve(t *testing.T) {
	start := testfixtures.NewFactsBuilder().AsEditor().WithVersion(5, 3).Build()
	m := newExploreModel(services.NewResolutionService(nil), start)
	require.False(t, m.resolution.Descriptor.HasPrivateDependency("MaterialEditor"))

	m = press(t, m, "N")
	assert.Equal(t, facts.NewHostVersion(5, 4), m.facts.HostVersion)
	assert.True(t, m.resolution.Descriptor.HasPrivateDependency("MaterialEditor"))

	m = press(t, m, "m")
	assert.Equal(t, facts.NewHostVersion(4, 4), m.facts.HostVersion)
	assert.False(t, m.resolution.Descriptor.HasPrivateDependency("MaterialEditor"), "4.4 must not pick up 5.4 entries")

	m = press(t, m, "l")
	assert.True(t, m.resolution.Descriptor.HasPrivateIncludePathModule("LiveCoding"))

	m = press(t, m, "t")
	assert.Equal(t, facts.TargetServer, m.facts.TargetType)
	assert.False(t, m.resolution.Descriptor.HasPrivateDependency("MessageLog"))

	m = press(t, m, "T", "T")
	assert.Equal(t, facts.TargetGame, m.facts.TargetType)
}

func TestExploreModel_MinorNeverNegative(t *testing.T) {
	m := newExploreModel(services.NewResolutionService(nil), testfixtures.NewFactsBuilder().WithVersion(5, 0).Build())

	m = press(t, m, "n", "n")
	assert.Equal(t, 0, m.facts.HostVersion.Minor)
}

func TestExploreModel_Quit(t *testing.T) {
	m := newExploreModel(services.NewResolutionService(nil), facts.DefaultEnvironmentFacts())

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestExploreModel_View(t *testing.T) {
	m := newExploreModel(services.NewResolutionService(nil), testfixtures.NewFactsBuilder().Build())

	view := m.View()
	assert.Contains(t, view, "Module rules explorer")
	assert.Contains(t, view, "Engine: 4.27")
	assert.Contains(t, view, "(base list only)")
	assert.Contains(t, view, "Private dependencies: 31")
}

func TestCycleTarget_Wraps(t *testing.T) {
	assert.Equal(t, facts.TargetGame, cycleTarget(facts.TargetProgram, 1))
	assert.Equal(t, facts.TargetProgram, cycleTarget(facts.TargetGame, -1))
}

func TestExploreModel_HelpListsBindings(t *testing.T) {
	m := newExploreModel(services.NewResolutionService(nil), facts.DefaultEnvironmentFacts())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(exploreModel)
	assert.Equal(t, 120, m.help.Width)

	view := m.View()
	for _, want := range []string{"t/T", "live coding", "M/m", "N/n", "quit"} {
		assert.Contains(t, view, want)
	}
}

func TestExploreModel_IgnoresUnboundKeys(t *testing.T) {
	m := newExploreModel(services.NewResolutionService(nil), facts.DefaultEnvironmentFacts())

	after := press(t, m, "x")
	assert.Equal(t, m.facts, after.facts)
}
