package encoding

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"modulerules.dev/cli/internal/core/descriptor"
	encodingports "modulerules.dev/cli/internal/core/ports/encoding"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TextEncoder renders the descriptor for people rather than build tools
type TextEncoder struct{}

func (TextEncoder) Format() string { return "text" }

func (TextEncoder) Encode(w io.Writer, d descriptor.ModuleDescriptor) error {
	pch := "enabled"
	if d.PrecompiledHeaderMode.Disabled() {
		pch = "disabled"
	}

	sections := []string{
		titleStyle.Render("Module " + d.Name),
		fmt.Sprintf("Precompiled headers: %s (%s)", pch, d.PrecompiledHeaderMode),
		fmt.Sprintf("Unity build: %t", d.UseUnityBuild),
		renderList("Public dependencies", d.PublicDependencies),
		renderList("Private dependencies", d.PrivateDependencies),
		renderList("Private include path modules", d.PrivateIncludePathModules),
		renderList("Dynamically loaded modules", d.DynamicallyLoadedModules),
	}

	if _, err := io.WriteString(w, strings.Join(sections, "\n")+"\n"); err != nil {
		return fmt.Errorf("encode text: %w", err)
	}
	return nil
}

// renderList renders a heading with the entry count followed by one indented entry per line
func renderList(title string, items []string) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("%s (%d)", title, len(items))))
	if len(items) == 0 {
		b.WriteString("\n  " + mutedStyle.Render("(none)"))
		return b.String()
	}
	for _, item := range items {
		b.WriteString("\n  " + item)
	}
	return b.String()
}

var _ encodingports.Encoder = TextEncoder{}
