package configports

import (
	"context"

	configdomain "modulerules.dev/cli/internal/core/domain/config"
)

// Loader reads facts entries from one source
type Loader interface {
	Load(ctx context.Context) (configdomain.Snapshot, error)
	Name() string
}

// FactsProvider merges all sources into parsed environment facts
type FactsProvider interface {
	Load(ctx context.Context) (configdomain.LoadedFacts, error)
}
