package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/rcops/mkmodule/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	dir := filepath.Join(root, "gcc")
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	require.NoError(t, fsys.MkdirAll(dir, 0755), "MkdirAll is idempotent")

	path := filepath.Join(dir, "13.2.0.lua")
	require.NoError(t, fsys.WriteFile(path, []byte("first"), 0644))
	require.NoError(t, fsys.WriteFile(path, []byte("second"), 0644))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = fsys.ReadFile(dir)
	assert.Error(t, err, "reading a directory fails")

	tmp := filepath.Join(dir, ".13.2.0.lua.tmp")
	require.NoError(t, fsys.WriteFile(tmp, []byte("third"), 0644))
	require.NoError(t, fsys.Rename(tmp, path), "Rename replaces an existing file")
	data, err = fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "third", string(data))
	_, err = fsys.Stat(tmp)
	assert.Error(t, err)

	require.NoError(t, fsys.Remove(path))
	_, err = fsys.Stat(path)
	assert.Error(t, err)
}

func TestOSFS(t *testing.T) {
	exercise(t, NewOS(), t.TempDir())
}

func TestAferoFS(t *testing.T) {
	exercise(t, NewMemory(), "/modulefiles")
}

func TestAferoFS_ReadOnly(t *testing.T) {
	fsys := NewAferoFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	assert.Error(t, fsys.MkdirAll("/modulefiles/gcc", 0755))
	assert.Error(t, fsys.WriteFile("/modulefiles/gcc/1.lua", []byte("x"), 0644))
}
