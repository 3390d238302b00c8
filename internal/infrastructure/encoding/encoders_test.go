package encoding

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"modulerules.dev/cli/internal/core/descriptor"
	"modulerules.dev/cli/internal/core/rules"
	"modulerules.dev/cli/internal/core/testfixtures"
)

func resolvedDescriptor() descriptor.ModuleDescriptor {
	return rules.Resolve(testfixtures.NewFactsBuilder().AsEditor().WithLiveCoding(true).WithVersion(5, 3).Build())
}

func TestForFormat(t *testing.T) {
	assert.Equal(t, []string{"json", "text", "yaml"}, Formats())

	for _, name := range Formats() {
		enc, err := ForFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, enc.Format())
	}

	_, err := ForFormat("toml")
	assert.ErrorContains(t, err, "unsupported format")
}

// TestJSONEncoder_EmptyLists_RenderAsArrays tests that empty lists never serialise as null
func TestJSONEncoder_EmptyLists_RenderAsArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONEncoder{}.Encode(&buf, descriptor.ModuleDescriptor{Name: "Empty"}))

	assert.Contains(t, buf.String(), `"dynamically_loaded_modules": []`)
	assert.NotContains(t, buf.String(), "null")
}

func TestJSONEncoder_PreservesOrder(t *testing.T) {
	d := resolvedDescriptor()

	var buf bytes.Buffer
	require.NoError(t, JSONEncoder{}.Encode(&buf, d))

	var decoded descriptor.ModuleDescriptor
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, d.Equal(decoded))
	assert.Equal(t, descriptor.PCHNoPCHs, decoded.PrecompiledHeaderMode)
}

func TestYAMLEncoder_PreservesOrder(t *testing.T) {
	d := resolvedDescriptor()

	var buf bytes.Buffer
	require.NoError(t, YAMLEncoder{}.Encode(&buf, d))
	assert.Contains(t, buf.String(), "precompiled_header_mode: NoPCHs")

	var decoded descriptor.ModuleDescriptor
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, d.Equal(decoded))
}

func TestTextEncoder_ListsEverySection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextEncoder{}.Encode(&buf, resolvedDescriptor()))

	out := buf.String()
	assert.Contains(t, out, "Module BlueprintAssist")
	assert.Contains(t, out, "Precompiled headers: disabled (NoPCHs)")
	assert.Contains(t, out, "Public dependencies (1)")
	assert.Contains(t, out, "Private dependencies (36)")
	assert.Contains(t, out, "Private include path modules (1)")
	assert.Contains(t, out, "  LiveCoding")
	assert.Contains(t, out, "(none)")
}
