package configinfra

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	configdomain "modulerules.dev/cli/internal/core/domain/config"
	configports "modulerules.dev/cli/internal/core/ports/config"
)

// DefaultFactsFile is read from the working directory when no --facts path is given
const DefaultFactsFile = ".modulerules.yaml"

// factsDocument is the YAML facts file. Nodes keep the raw scalar text, so
// host_version: 5.10 is read as "5.10" rather than the float 5.1.
type factsDocument struct {
	TargetType  yaml.Node `yaml:"target_type"`
	LiveCoding  yaml.Node `yaml:"live_coding"`
	HostVersion yaml.Node `yaml:"host_version"`
}

// FileLoader reads facts from a YAML file.
type FileLoader struct {
	path     string
	required bool
}

// NewFileLoader creates a FileLoader. When required is false a missing file
// yields an empty snapshot.
func NewFileLoader(path string, required bool) *FileLoader {
	return &FileLoader{path: path, required: required}
}

func (l *FileLoader) Name() string { return "file" }

func (l *FileLoader) Load(ctx context.Context) (configdomain.Snapshot, error) {
	snap := make(configdomain.Snapshot)
	if l.path == "" {
		return snap, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !l.required {
			return snap, nil
		}
		return nil, fmt.Errorf("read facts file: %w", err)
	}

	var doc factsDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse facts file %s: %w", l.path, err)
	}

	fields := []struct {
		name string
		node yaml.Node
	}{
		{configdomain.FieldTargetType, doc.TargetType},
		{configdomain.FieldLiveCoding, doc.LiveCoding},
		{configdomain.FieldHostVersion, doc.HostVersion},
	}
	for _, f := range fields {
		if f.node.Kind == 0 || f.node.ShortTag() == "!!null" {
			continue
		}
		if f.node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parse facts file %s: %s must be a scalar (line %d)", l.path, f.name, f.node.Line)
		}
		snap[f.name] = configdomain.Entry{
			Key:        f.name,
			Value:      f.node.Value,
			Source:     "file",
			SourcePath: l.path,
			Priority:   configdomain.PriorityFile,
		}
	}
	return snap, nil
}

var _ configports.Loader = (*FileLoader)(nil)
