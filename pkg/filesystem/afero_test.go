package filesystem

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS_FileRoundtrip(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/src/sub", 0755))
	require.NoError(t, fsys.WriteFile("/src/sub/a.txt", []byte("hello"), 0644))

	data, err := fsys.ReadFile("/src/sub/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	entries, err := fsys.ReadDir("/src/sub")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.txt", entries[0].Name())
}

func TestAferoFS_ReadFileOnDirectory(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	_, err := fsys.ReadFile("/dir")
	assert.Error(t, err)
}

func TestAferoFS_Chtimes(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.WriteFile("/a.txt", []byte("x"), 0644))

	mtime := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, fsys.Chtimes("/a.txt", mtime, mtime))

	info, err := fsys.Stat("/a.txt")
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}
