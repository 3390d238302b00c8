package configinfra

import (
	"context"
	"strconv"

	configdomain "modulerules.dev/cli/internal/core/domain/config"
	"modulerules.dev/cli/internal/core/facts"
	configports "modulerules.dev/cli/internal/core/ports/config"
)

// FlagLoader exposes command-line overrides as the highest-priority source.
// Keys are field names; values are the flag text as typed.
type FlagLoader struct {
	overrides map[string]string
	flagNames map[string]string
}

// NewFlagLoader creates a FlagLoader. flagNames maps a field to the flag
// that set it and is only used for provenance.
func NewFlagLoader(overrides, flagNames map[string]string) *FlagLoader {
	return &FlagLoader{overrides: overrides, flagNames: flagNames}
}

func (l *FlagLoader) Name() string { return "flags" }

func (l *FlagLoader) Load(ctx context.Context) (configdomain.Snapshot, error) {
	snap := make(configdomain.Snapshot, len(l.overrides))
	for field, value := range l.overrides {
		path := l.flagNames[field]
		if path == "" {
			path = field
		}
		snap[field] = configdomain.Entry{Key: field, Value: value, Source: "flag", SourcePath: path, Priority: configdomain.PriorityFlag}
	}
	return snap, nil
}

// DefaultLoader supplies built-in facts so every field always has a value.
type DefaultLoader struct {
	defaults facts.EnvironmentFacts
}

func NewDefaultLoader(defaults facts.EnvironmentFacts) *DefaultLoader {
	return &DefaultLoader{defaults: defaults}
}

func (l *DefaultLoader) Name() string { return "default" }

func (l *DefaultLoader) Load(ctx context.Context) (configdomain.Snapshot, error) {
	entry := func(field, value string) configdomain.Entry {
		return configdomain.Entry{Key: field, Value: value, Source: "default", Priority: configdomain.PriorityDefault}
	}
	return configdomain.Snapshot{
		configdomain.FieldTargetType:  entry(configdomain.FieldTargetType, l.defaults.TargetType.String()),
		configdomain.FieldLiveCoding:  entry(configdomain.FieldLiveCoding, strconv.FormatBool(l.defaults.LiveCodingEnabled)),
		configdomain.FieldHostVersion: entry(configdomain.FieldHostVersion, l.defaults.HostVersion.String()),
	}, nil
}

var (
	_ configports.Loader = (*FlagLoader)(nil)
	_ configports.Loader = (*DefaultLoader)(nil)
)
