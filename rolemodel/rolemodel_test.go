package rolemodel

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[models]
fast = " provider/model-small "
"gpt-4.1" = "openai/gpt-4.1"
blank = "  "
number = 10

[role_models]
reviewer = "fast"
planner = "provider/model-xl"
coder = "gpt-4.1"
empty = "   "
broken = "blank"
numeric = "number"
weird = 5
`

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

func TestResolve(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.toml", testConfig))
	require.NoError(t, err)

	tests := []struct {
		role    string
		want    string
		wantErr error
	}{
		{"reviewer", "provider/model-small", nil},
		{" reviewer ", "provider/model-small", nil},
		{"planner", "provider/model-xl", nil},
		{"coder", "openai/gpt-4.1", nil},
		{"", "", ErrEmptyRole},
		{"  ", "", ErrEmptyRole},
		{"unknown", "", ErrRoleNotConfigured},
		{"weird", "", ErrRoleNotConfigured},
		{"empty", "", ErrEmptyAssignment},
		{"broken", "", ErrInvalidMapping},
		{"numeric", "", ErrInvalidMapping},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			got, err := cfg.Resolve(tt.role)
			if tt.wantErr != nil {
				a.Truef(errors.Is(err, tt.wantErr), "want %v, got %v", tt.wantErr, err)
				return
			}
			a.NoError(err)
			a.Equal(tt.want, got)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	a := require.New(t)

	cfg, err := Load(writeConfig(t, "config.yaml", `
models:
  fast: provider/model-small
role_models:
  reviewer: fast
`))
	a.NoError(err)

	got, err := cfg.Resolve("reviewer")
	a.NoError(err)
	a.Equal("provider/model-small", got)
}

func TestLoadMissingSections(t *testing.T) {
	a := require.New(t)

	cfg, err := Load(writeConfig(t, "config.toml", "title = \"x\"\n"))
	a.NoError(err)
	a.Empty(cfg.Models)
	a.Empty(cfg.RoleModels)

	_, err = cfg.Resolve("reviewer")
	a.True(errors.Is(err, ErrRoleNotConfigured))
}

func TestLoadError(t *testing.T) {
	a := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	a.Error(err)

	_, err = Load(writeConfig(t, "bad.toml", "[models\n"))
	a.Error(err)
}
