package configinfra

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	configdomain "modulerules.dev/cli/internal/core/domain/config"
	configports "modulerules.dev/cli/internal/core/ports/config"
)

// Environment variables read by EnvLoader, keyed by the field they set.
var envMappings = []struct {
	env   string
	field string
}{
	{"MR_TARGET_TYPE", configdomain.FieldTargetType},
	{"MR_LIVE_CODING", configdomain.FieldLiveCoding},
	{"MR_ENGINE_VERSION", configdomain.FieldHostVersion},
}

// EnvLoader reads MR_* variables from the process environment and from an
// optional dotenv file. Process variables take precedence over the file.
type EnvLoader struct {
	dotenvPath string
}

// NewEnvLoader creates an EnvLoader; an empty dotenvPath skips the file.
func NewEnvLoader(dotenvPath string) *EnvLoader {
	return &EnvLoader{dotenvPath: dotenvPath}
}

func (l *EnvLoader) Name() string { return "env" }

// Load implements Loader by returning the environment snapshot.
func (l *EnvLoader) Load(ctx context.Context) (configdomain.Snapshot, error) {
	dotenv, err := l.readDotenv()
	if err != nil {
		return nil, err
	}

	snap := make(configdomain.Snapshot)
	for _, m := range envMappings {
		if v, ok := os.LookupEnv(m.env); ok && v != "" {
			snap[m.field] = configdomain.Entry{Key: m.field, Value: v, Source: "env", SourcePath: m.env, Priority: configdomain.PriorityEnv}
			continue
		}
		if v := dotenv[m.env]; v != "" {
			snap[m.field] = configdomain.Entry{Key: m.field, Value: v, Source: "dotenv", SourcePath: l.dotenvPath + ":" + m.env, Priority: configdomain.PriorityEnv}
		}
	}
	return snap, nil
}

// readDotenv parses the dotenv file without touching the process environment.
// A missing file is not an error.
func (l *EnvLoader) readDotenv() (map[string]string, error) {
	if l.dotenvPath == "" {
		return nil, nil
	}
	values, err := godotenv.Read(l.dotenvPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", l.dotenvPath, err)
	}
	return values, nil
}

var _ configports.Loader = (*EnvLoader)(nil)
