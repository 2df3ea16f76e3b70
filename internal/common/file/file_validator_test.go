package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileValidator_GetFileInfo(t *testing.T) {
	fv := NewFileValidator(zerolog.Nop())
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0644))

	info, err := fv.GetFileInfo(path)
	require.NoError(t, err)
	assert.Equal(t, int64(13), info.Size)
	assert.Equal(t, "main.go", info.Name)
	assert.False(t, info.IsDir)

	_, err = fv.GetFileInfo(filepath.Join(dir, "missing.go"))
	assert.ErrorIs(t, err, errorwrapper.ErrNotFound)
}

func TestFileValidator_FileExists(t *testing.T) {
	fv := NewFileValidator(zerolog.Nop())
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.True(t, fv.FileExists(path))
	assert.False(t, fv.FileExists(dir))
	assert.False(t, fv.FileExists(filepath.Join(dir, "b.txt")))
}

func TestFileValidator_WriteLinesAndRemove(t *testing.T) {
	fv := NewFileValidator(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "list.tmp")

	require.NoError(t, fv.WriteLines(path, []string{"/a", "/b"}, DefaultFileWriteOptions()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/a\n/b\n", string(data))

	require.NoError(t, fv.RemoveIfExists(path))
	assert.NoFileExists(t, path)
	assert.NoError(t, fv.RemoveIfExists(path))
}
