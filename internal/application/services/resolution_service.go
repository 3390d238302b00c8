package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	configdomain "modulerules.dev/cli/internal/core/domain/config"
	"modulerules.dev/cli/internal/core/descriptor"
	"modulerules.dev/cli/internal/core/facts"
	configports "modulerules.dev/cli/internal/core/ports/config"
	"modulerules.dev/cli/internal/core/rules"
	"modulerules.dev/cli/internal/infrastructure/encoding"
)

// Resolution is a descriptor together with the facts and rule decisions that produced it
type Resolution struct {
	Facts       facts.EnvironmentFacts      `json:"facts" yaml:"facts"`
	Sources     configdomain.Snapshot       `json:"sources,omitempty" yaml:"sources,omitempty"`
	Evaluations []rules.Evaluation          `json:"evaluations" yaml:"evaluations"`
	Descriptor  descriptor.ModuleDescriptor `json:"descriptor" yaml:"descriptor"`
}

// VersionComparison is the result of resolving the same facts at two host versions
type VersionComparison struct {
	From       Resolution            `json:"from" yaml:"from"`
	To         Resolution            `json:"to" yaml:"to"`
	Difference descriptor.Difference `json:"difference" yaml:"difference"`
}

// ResolutionService loads facts, resolves descriptors and writes them out
type ResolutionService struct {
	logger *zap.Logger
}

// NewResolutionService creates a new resolution service
func NewResolutionService(logger *zap.Logger) *ResolutionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResolutionService{logger: logger}
}

// Resolve loads facts from provider and resolves them
func (s *ResolutionService) Resolve(ctx context.Context, provider configports.FactsProvider) (Resolution, error) {
	loaded, err := s.LoadFacts(ctx, provider)
	if err != nil {
		return Resolution{}, err
	}

	res := s.ResolveFacts(loaded.Facts)
	res.Sources = loaded.Snapshot
	return res, nil
}

// LoadFacts merges the provider's sources and logs where each fact came from
func (s *ResolutionService) LoadFacts(ctx context.Context, provider configports.FactsProvider) (configdomain.LoadedFacts, error) {
	loaded, err := provider.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load environment facts", zap.Error(err))
		return configdomain.LoadedFacts{}, fmt.Errorf("failed to load environment facts: %w", err)
	}

	for _, e := range loaded.Snapshot.Entries() {
		s.logger.Debug("fact",
			zap.String("key", e.Key),
			zap.String("value", e.Value),
			zap.String("source", e.Source),
			zap.String("source_path", e.SourcePath))
	}
	return loaded, nil
}

// ResolveFacts resolves already-known facts
func (s *ResolutionService) ResolveFacts(f facts.EnvironmentFacts) Resolution {
	evals := rules.Explain(f)
	for _, e := range evals {
		s.logger.Debug("rule evaluated",
			zap.String("rule", e.Rule),
			zap.Bool("fired", e.Fired),
			zap.Strings("private", e.Contributed.PrivateDependencies),
			zap.Strings("include_path", e.Contributed.PrivateIncludePathModules))
	}

	d := rules.Resolve(f)
	s.logger.Info("descriptor resolved",
		zap.Stringer("facts", f),
		zap.Int("private", len(d.PrivateDependencies)),
		zap.Int("include_path", len(d.PrivateIncludePathModules)))

	return Resolution{Facts: f, Evaluations: evals, Descriptor: d}
}

// CompareVersions resolves base at two host versions, keeping every other fact
func (s *ResolutionService) CompareVersions(base facts.EnvironmentFacts, from, to facts.HostVersion) VersionComparison {
	fromFacts, toFacts := base, base
	fromFacts.HostVersion = from
	toFacts.HostVersion = to

	cmp := VersionComparison{
		From: s.ResolveFacts(fromFacts),
		To:   s.ResolveFacts(toFacts),
	}
	cmp.Difference = descriptor.Diff(cmp.From.Descriptor, cmp.To.Descriptor)
	return cmp
}

// Write encodes the descriptor to w in the named format
func (s *ResolutionService) Write(w io.Writer, format string, d descriptor.ModuleDescriptor) error {
	enc, err := encoding.ForFormat(format)
	if err != nil {
		return err
	}
	if err := enc.Encode(w, d); err != nil {
		s.logger.Error("failed to write descriptor", zap.String("format", format), zap.Error(err))
		return err
	}
	return nil
}
