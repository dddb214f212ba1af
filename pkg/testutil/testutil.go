// Package testutil provides helpers shared by the hook's tests: tree
// builders with controlled modification times, an in-memory filesystem,
// and a recording logger.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/filesystem"
	"github.com/MSD-LIVE/jupyter-notebook-statemodify/pkg/types"
)

// NewMemoryFS returns a types.FS backed by an afero in-memory filesystem.
func NewMemoryFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// CreateTree writes the given relative-path -> content files under root,
// creating intermediate directories. Entries with a trailing slash create
// empty directories.
func CreateTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// SetMtime pins a file's access and modification time, so tests can
// construct newer-than / older-than relationships deterministically.
func SetMtime(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

// Mtime reads a file's modification time.
func Mtime(t *testing.T, path string) time.Time {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.ModTime()
}

// ReadFile reads a file's content as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
