package encodingports

import (
	"io"

	"modulerules.dev/cli/internal/core/descriptor"
)

// Encoder writes a module descriptor in one output format
type Encoder interface {
	Encode(w io.Writer, d descriptor.ModuleDescriptor) error
	Format() string
}
