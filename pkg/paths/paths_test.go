package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/etc/datahook")
		assert.Equal(t, "/etc/datahook", ConfigDir())
	})

	t.Run("defaults under XDG config home", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		assert.True(t, strings.HasSuffix(ConfigDir(), HookDirName))
	})
}

func TestStateDir(t *testing.T) {
	assert.True(t, strings.HasSuffix(StateDir(), HookDirName))
}

func TestResolveTarget(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"absolute path unchanged", "/srv/data", "/srv/data"},
		{"absolute path cleaned", "/srv//data/.", "/srv/data"},
		{"relative name joins cwd", "data", filepath.Join(cwd, "data")},
		{"nested relative name", "work/data", filepath.Join(cwd, "work", "data")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTarget(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
