package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"modulerules.dev/cli/internal/application/services"
	configdomain "modulerules.dev/cli/internal/core/domain/config"
	"modulerules.dev/cli/internal/core/descriptor"
	"modulerules.dev/cli/internal/core/facts"
	"modulerules.dev/cli/internal/core/rules"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	firedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// writeStructured writes v as json or yaml; ok is false for any other format
func writeStructured(w io.Writer, format string, v any) (ok bool, err error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func renderFactsLine(f facts.EnvironmentFacts) string {
	return fmt.Sprintf("Target: %s | Live coding: %t | Engine: %s", f.TargetType, f.LiveCodingEnabled, f.HostVersion)
}

// renderEvaluations renders one row per rule with a fired marker and its contribution
func renderEvaluations(evals []rules.Evaluation) string {
	rows := make([]string, 0, len(evals))
	for _, e := range evals {
		marker := skippedStyle.Render("✗")
		contribution := mutedStyle.Render("-")
		if e.Fired {
			marker = firedStyle.Render("✓")
			contribution = describeFragment(e.Contributed)
		}
		rows = append(rows, fmt.Sprintf("%s %-20s %-48s %s", marker, e.Rule, e.Description, contribution))
	}
	return strings.Join(rows, "\n")
}

func describeFragment(f rules.Fragment) string {
	var parts []string
	if len(f.PrivateDependencies) > 0 {
		parts = append(parts, "private += "+strings.Join(f.PrivateDependencies, ", "))
	}
	if len(f.PrivateIncludePathModules) > 0 {
		parts = append(parts, "include path += "+strings.Join(f.PrivateIncludePathModules, ", "))
	}
	return strings.Join(parts, "; ")
}

func renderExplanation(res services.Resolution) string {
	return strings.Join([]string{
		titleStyle.Render("Rule evaluation for " + res.Descriptor.Name),
		renderFactsLine(res.Facts),
		"",
		renderEvaluations(res.Evaluations),
		"",
		mutedStyle.Render(res.Descriptor.String()),
	}, "\n") + "\n"
}

func renderSources(snap configdomain.Snapshot) string {
	rows := []string{titleStyle.Render("Environment facts")}
	for _, e := range snap.Entries() {
		origin := e.Source
		if e.SourcePath != "" {
			origin += " (" + e.SourcePath + ")"
		}
		rows = append(rows, fmt.Sprintf("%-14s %-8s %s", e.Key, e.Value, mutedStyle.Render(origin)))
	}
	return strings.Join(rows, "\n") + "\n"
}

func renderRuleTable(table []rules.Rule) string {
	rows := []string{
		titleStyle.Render("Dependency rules for " + rules.ModuleName),
		fmt.Sprintf("Base public dependencies (%d): %s", len(rules.BasePublicDependencies()), strings.Join(rules.BasePublicDependencies(), ", ")),
		fmt.Sprintf("Base private dependencies (%d): %s", len(rules.BasePrivateDependencies()), strings.Join(rules.BasePrivateDependencies(), ", ")),
		"",
	}
	for i, r := range table {
		rows = append(rows, fmt.Sprintf("%d. %-20s when %-48s %s", i+1, r.Name, r.Description, describeFragment(r.Fragment)))
	}
	return strings.Join(rows, "\n") + "\n"
}

func renderComparison(cmp services.VersionComparison) string {
	rows := []string{
		titleStyle.Render(fmt.Sprintf("Engine %s → %s", cmp.From.Facts.HostVersion, cmp.To.Facts.HostVersion)),
		fmt.Sprintf("Target: %s | Live coding: %t", cmp.To.Facts.TargetType, cmp.To.Facts.LiveCodingEnabled),
	}
	if cmp.Difference.Empty() {
		rows = append(rows, mutedStyle.Render("No dependency changes"))
		return strings.Join(rows, "\n") + "\n"
	}
	for _, c := range cmp.Difference.Changes {
		if c.Empty() {
			continue
		}
		rows = append(rows, "", c.List)
		for _, name := range c.Added {
			rows = append(rows, addedStyle.Render("  + "+name))
		}
		for _, name := range c.Removed {
			rows = append(rows, removedStyle.Render("  - "+name))
		}
	}
	return strings.Join(rows, "\n") + "\n"
}

// renderPrivateExtras lists the private dependencies appended after the base list
func renderPrivateExtras(d descriptor.ModuleDescriptor) string {
	base := len(rules.BasePrivateDependencies())
	if len(d.PrivateDependencies) <= base {
		return mutedStyle.Render("(base list only)")
	}
	return strings.Join(d.PrivateDependencies[base:], ", ")
}
