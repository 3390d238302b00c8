package encoding

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"modulerules.dev/cli/internal/core/descriptor"
	encodingports "modulerules.dev/cli/internal/core/ports/encoding"
)

// JSONEncoder writes the descriptor as indented JSON
type JSONEncoder struct{}

func (JSONEncoder) Format() string { return "json" }

func (JSONEncoder) Encode(w io.Writer, d descriptor.ModuleDescriptor) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.Clone()); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// YAMLEncoder writes the descriptor as a YAML document
type YAMLEncoder struct{}

func (YAMLEncoder) Format() string { return "yaml" }

func (YAMLEncoder) Encode(w io.Writer, d descriptor.ModuleDescriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.Clone()); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

var encoders = map[string]encodingports.Encoder{
	"json": JSONEncoder{},
	"yaml": YAMLEncoder{},
	"text": TextEncoder{},
}

// ForFormat returns the encoder registered for format
func ForFormat(format string) (encodingports.Encoder, error) {
	enc, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %v)", format, Formats())
	}
	return enc, nil
}

// Formats lists the supported output formats
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for name := range encoders {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

var (
	_ encodingports.Encoder = JSONEncoder{}
	_ encodingports.Encoder = YAMLEncoder{}
)
