package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"modulerules.dev/cli/internal/application/services"
	"modulerules.dev/cli/internal/core/facts"
)

// NewExploreCommand creates the explore command
func NewExploreCommand(container *CLIContainer) *cobra.Command {
	flags := &FactFlags{}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactively change host facts and watch the descriptor update",
		Long: `Launch an interactive view that starts from the merged host facts and
re-resolves the descriptor on every change.

Controls:
  t / T   next / previous target type
  l       toggle live coding
  M / m   raise / lower the major engine version
  N / n   raise / lower the minor engine version
  q       quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := container.ResolutionService.LoadFacts(cmd.Context(), flags.provider(cmd, container))
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				newExploreModel(container.ResolutionService, loaded.Facts),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

type exploreKeyMap struct {
	NextTarget key.Binding
	PrevTarget key.Binding
	LiveCoding key.Binding
	MajorUp    key.Binding
	MajorDown  key.Binding
	MinorUp    key.Binding
	MinorDown  key.Binding
	Quit       key.Binding
}

func newExploreKeyMap() exploreKeyMap {
	return exploreKeyMap{
		NextTarget: key.NewBinding(key.WithKeys("t"), key.WithHelp("t/T", "target")),
		PrevTarget: key.NewBinding(key.WithKeys("T")),
		LiveCoding: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "live coding")),
		MajorUp:    key.NewBinding(key.WithKeys("M"), key.WithHelp("M/m", "major")),
		MajorDown:  key.NewBinding(key.WithKeys("m")),
		MinorUp:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N/n", "minor")),
		MinorDown:  key.NewBinding(key.WithKeys("n")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTarget, k.LiveCoding, k.MajorUp, k.MinorUp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// exploreModel is the Bubble Tea model behind mr explore
type exploreModel struct {
	service    *services.ResolutionService
	keys       exploreKeyMap
	help       help.Model
	facts      facts.EnvironmentFacts
	resolution services.Resolution
}

func newExploreModel(service *services.ResolutionService, f facts.EnvironmentFacts) exploreModel {
	m := exploreModel{service: service, keys: newExploreKeyMap(), help: help.New(), facts: f}
	m.resolution = service.ResolveFacts(f)
	return m
}

// Init implements the Bubble Tea init method
func (m exploreModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method
func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTarget):
		m.facts.TargetType = cycleTarget(m.facts.TargetType, 1)
	case key.Matches(msg, m.keys.PrevTarget):
		m.facts.TargetType = cycleTarget(m.facts.TargetType, -1)
	case key.Matches(msg, m.keys.LiveCoding):
		m.facts.LiveCodingEnabled = !m.facts.LiveCodingEnabled
	case key.Matches(msg, m.keys.MajorUp):
		m.facts.HostVersion.Major++
	case key.Matches(msg, m.keys.MajorDown):
		m.facts.HostVersion.Major--
	case key.Matches(msg, m.keys.MinorUp):
		m.facts.HostVersion.Minor++
	case key.Matches(msg, m.keys.MinorDown):
		if m.facts.HostVersion.Minor > 0 {
			m.facts.HostVersion.Minor--
		}
	default:
		return m, nil
	}

	m.resolution = m.service.ResolveFacts(m.facts)
	return m, nil
}

// View implements the Bubble Tea view method
func (m exploreModel) View() string {
	d := m.resolution.Descriptor

	include := mutedStyle.Render("(none)")
	if len(d.PrivateIncludePathModules) > 0 {
		include = strings.Join(d.PrivateIncludePathModules, ", ")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Module rules explorer"),
		renderFactsLine(m.facts),
		"",
		renderEvaluations(m.resolution.Evaluations),
		"",
		fmt.Sprintf("Private dependencies: %d", len(d.PrivateDependencies)),
		"  added by rules: "+renderPrivateExtras(d),
		"Private include path modules: "+include,
		"",
		m.help.View(m.keys),
	)
	return body + "\n"
}

// cycleTarget steps through the target types, wrapping at either end
func cycleTarget(current facts.TargetType, step int) facts.TargetType {
	all := facts.AllTargetTypes()
	idx := 0
	for i, t := range all {
		if t == current {
			idx = i
			break
		}
	}
	return all[(idx+step+len(all))%len(all)]
}
