package configinfra

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configdomain "modulerules.dev/cli/internal/core/domain/config"
	"modulerules.dev/cli/internal/core/facts"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearFactsEnv(t *testing.T) {
	t.Helper()
	for _, m := range envMappings {
		t.Setenv(m.env, "")
	}
}

func TestEnvLoader_ProcessEnvBeatsDotenv(t *testing.T) {
	clearFactsEnv(t)
	dir := t.TempDir()
	dotenv := writeFile(t, dir, ".env", "MR_TARGET_TYPE=Game\nMR_ENGINE_VERSION=4.27\n")
	t.Setenv("MR_TARGET_TYPE", "Server")

	snap, err := NewEnvLoader(dotenv).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Server", snap[configdomain.FieldTargetType].Value)
	assert.Equal(t, "env", snap[configdomain.FieldTargetType].Source)
	assert.Equal(t, "4.27", snap[configdomain.FieldHostVersion].Value)
	assert.Equal(t, "dotenv", snap[configdomain.FieldHostVersion].Source)
	assert.NotContains(t, snap, configdomain.FieldLiveCoding)
}

func TestEnvLoader_MissingDotenv_IsNotAnError(t *testing.T) {
	clearFactsEnv(t)

	snap, err := NewEnvLoader(filepath.Join(t.TempDir(), "missing.env")).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestFileLoader_ParsesYAMLScalars(t *testing.T) {
	path := writeFile(t, t.TempDir(), "facts.yaml", "target_type: Editor\nlive_coding: false\nhost_version: 5.10\n")

	snap, err := NewFileLoader(path, true).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Editor", snap[configdomain.FieldTargetType].Value)
	assert.Equal(t, "false", snap[configdomain.FieldLiveCoding].Value)
	assert.Equal(t, "5.10", snap[configdomain.FieldHostVersion].Value, "Raw scalar text should be preserved")
	assert.Equal(t, configdomain.PriorityFile, snap[configdomain.FieldHostVersion].Priority)
}

// TestFileLoader_ErrorCases tests the failure modes of the YAML facts source
func TestFileLoader_ErrorCases(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		path        string
		required    bool
		expectError bool
	}{
		{name: "MissingOptional_ShouldSucceed", path: filepath.Join(dir, "absent.yaml")},
		{name: "MissingRequired_ShouldFail", path: filepath.Join(dir, "absent.yaml"), required: true, expectError: true},
		{name: "UnknownField_ShouldFail", path: writeFile(t, dir, "unknown.yaml", "platform: Win64\n"), expectError: true},
		{name: "NonScalar_ShouldFail", path: writeFile(t, dir, "list.yaml", "host_version: [5, 4]\n"), expectError: true},
		{name: "EmptyFile_ShouldSucceed", path: writeFile(t, dir, "empty.yaml", "")},
		{name: "NullValue_ShouldBeSkipped", path: writeFile(t, dir, "null.yaml", "target_type:\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := NewFileLoader(tt.path, tt.required).Load(context.Background())
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, snap)
		})
	}
}

// TestUnifiedLoader_Precedence_FlagEnvFileDefault tests the full source ordering
func TestUnifiedLoader_Precedence_FlagEnvFileDefault(t *testing.T) {
	clearFactsEnv(t)
	dir := t.TempDir()
	factsFile := writeFile(t, dir, "facts.yaml", "target_type: Game\nlive_coding: false\nhost_version: '4.27'\n")
	t.Setenv("MR_ENGINE_VERSION", "5.3")

	loader := NewUnifiedLoader(nil,
		NewDefaultLoader(facts.DefaultEnvironmentFacts()),
		NewFileLoader(factsFile, true),
		NewEnvLoader(""),
		NewFlagLoader(map[string]string{configdomain.FieldTargetType: "editor"}, map[string]string{configdomain.FieldTargetType: "--target"}),
	)

	loaded, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, facts.TargetEditor, loaded.Facts.TargetType, "Flag wins")
	assert.Equal(t, facts.NewHostVersion(5, 3), loaded.Facts.HostVersion, "Env beats file")
	assert.False(t, loaded.Facts.LiveCodingEnabled, "File beats default")

	assert.Equal(t, "--target", loaded.Snapshot[configdomain.FieldTargetType].SourcePath)
	assert.Equal(t, "MR_ENGINE_VERSION", loaded.Snapshot[configdomain.FieldHostVersion].SourcePath)
}

func TestUnifiedLoader_DefaultsOnly(t *testing.T) {
	loaded, err := NewUnifiedLoader(nil, NewDefaultLoader(facts.DefaultEnvironmentFacts())).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, facts.DefaultEnvironmentFacts(), loaded.Facts)
	for _, e := range loaded.Snapshot.Entries() {
		assert.Equal(t, "default", e.Source)
	}
}

// TestUnifiedLoader_InvalidValues_ReportSource tests that parse errors name the offending source
func TestUnifiedLoader_InvalidValues_ReportSource(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		sentinel error
	}{
		{name: "BadTarget", field: configdomain.FieldTargetType, value: "Console", sentinel: facts.ErrInvalidTargetType},
		{name: "BadVersion", field: configdomain.FieldHostVersion, value: "five", sentinel: facts.ErrInvalidVersion},
		{name: "BadLiveCoding", field: configdomain.FieldLiveCoding, value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewUnifiedLoader(nil,
				NewDefaultLoader(facts.DefaultEnvironmentFacts()),
				NewFlagLoader(map[string]string{tt.field: tt.value}, nil),
			)

			_, err := loader.Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "from flag")
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestUnifiedLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewUnifiedLoader(nil, NewDefaultLoader(facts.DefaultEnvironmentFacts())).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
