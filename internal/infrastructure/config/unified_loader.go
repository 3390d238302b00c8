package configinfra

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	configdomain "modulerules.dev/cli/internal/core/domain/config"
	"modulerules.dev/cli/internal/core/facts"
	configports "modulerules.dev/cli/internal/core/ports/config"
)

// UnifiedLoader merges facts from all sources with proper precedence and
// parses the winning values.
type UnifiedLoader struct {
	loaders []configports.Loader
	logger  *zap.Logger
}

// NewUnifiedLoader creates a loader over the given sources. The order of
// loaders does not matter; priorities on the entries decide.
func NewUnifiedLoader(logger *zap.Logger, loaders ...configports.Loader) *UnifiedLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnifiedLoader{loaders: loaders, logger: logger}
}

// Load runs every source and returns the merged facts
func (l *UnifiedLoader) Load(ctx context.Context) (configdomain.LoadedFacts, error) {
	merged := make(configdomain.Snapshot)
	for _, loader := range l.loaders {
		if err := ctx.Err(); err != nil {
			return configdomain.LoadedFacts{}, err
		}
		snap, err := loader.Load(ctx)
		if err != nil {
			return configdomain.LoadedFacts{}, fmt.Errorf("load facts from %s: %w", loader.Name(), err)
		}
		l.logger.Debug("facts source loaded",
			zap.String("source", loader.Name()),
			zap.Int("entries", len(snap)))
		merged.Merge(snap)
	}

	parsed, err := parseFacts(merged)
	if err != nil {
		return configdomain.LoadedFacts{}, err
	}
	return configdomain.LoadedFacts{Facts: parsed, Snapshot: merged}, nil
}

// parseFacts turns the merged snapshot into EnvironmentFacts. Missing fields
// keep their zero value; callers include a DefaultLoader to avoid that.
func parseFacts(snap configdomain.Snapshot) (facts.EnvironmentFacts, error) {
	var out facts.EnvironmentFacts

	if e, ok := snap[configdomain.FieldTargetType]; ok {
		target, err := facts.NewTargetType(e.Value)
		if err != nil {
			return out, entryError(e, err)
		}
		out.TargetType = target
	}

	if e, ok := snap[configdomain.FieldLiveCoding]; ok {
		enabled, err := strconv.ParseBool(e.Value)
		if err != nil {
			return out, entryError(e, fmt.Errorf("invalid live coding flag %q", e.Value))
		}
		out.LiveCodingEnabled = enabled
	}

	if e, ok := snap[configdomain.FieldHostVersion]; ok {
		version, err := facts.ParseHostVersion(e.Value)
		if err != nil {
			return out, entryError(e, err)
		}
		out.HostVersion = version
	}

	return out, nil
}

func entryError(e configdomain.Entry, err error) error {
	if e.SourcePath != "" {
		return fmt.Errorf("%s from %s (%s): %w", e.Key, e.Source, e.SourcePath, err)
	}
	return fmt.Errorf("%s from %s: %w", e.Key, e.Source, err)
}

var _ configports.FactsProvider = (*UnifiedLoader)(nil)
