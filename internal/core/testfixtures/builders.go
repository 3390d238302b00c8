package testfixtures

import (
	"pgregory.net/rapid"

	"modulerules.dev/cli/internal/core/facts"
)

// FactsBuilder provides a builder pattern for creating test environment facts
type FactsBuilder struct {
	facts facts.EnvironmentFacts
}

// NewFactsBuilder creates a FactsBuilder starting from a 4.27 game build without live coding
func NewFactsBuilder() *FactsBuilder {
	return &FactsBuilder{
		facts: facts.EnvironmentFacts{
			TargetType:        facts.TargetGame,
			LiveCodingEnabled: false,
			HostVersion:       facts.NewHostVersion(4, 27),
		},
	}
}

// WithTarget sets the target type
func (b *FactsBuilder) WithTarget(target facts.TargetType) *FactsBuilder {
	b.facts.TargetType = target
	return b
}

// AsEditor sets the target type to Editor
func (b *FactsBuilder) AsEditor() *FactsBuilder {
	return b.WithTarget(facts.TargetEditor)
}

// WithLiveCoding sets the live coding flag
func (b *FactsBuilder) WithLiveCoding(enabled bool) *FactsBuilder {
	b.facts.LiveCodingEnabled = enabled
	return b
}

// WithVersion sets the host version
func (b *FactsBuilder) WithVersion(major, minor int) *FactsBuilder {
	b.facts.HostVersion = facts.NewHostVersion(major, minor)
	return b
}

// Build returns the configured facts
func (b *FactsBuilder) Build() facts.EnvironmentFacts {
	return b.facts
}

// FactsGenerator draws arbitrary environment facts for property-based tests.
// Versions range over realistic and out-of-range values alike.
func FactsGenerator() *rapid.Generator[facts.EnvironmentFacts] {
	return rapid.Custom(func(t *rapid.T) facts.EnvironmentFacts {
		return facts.EnvironmentFacts{
			TargetType:        rapid.SampledFrom(facts.AllTargetTypes()).Draw(t, "target"),
			LiveCodingEnabled: rapid.Bool().Draw(t, "liveCoding"),
			HostVersion: facts.NewHostVersion(
				rapid.IntRange(-1, 7).Draw(t, "major"),
				rapid.IntRange(-1, 30).Draw(t, "minor"),
			),
		}
	})
}
