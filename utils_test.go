package swatches

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestRgb2hex(t *testing.T) {
	assert.Equal(t, "#000000", rgb2hex(0, 0, 0))
	assert.Equal(t, "#0a0b0c", rgb2hex(10, 11, 12))
	assert.Equal(t, "#ffffff", rgb2hex(255, 255, 255))
}

func TestMarshalIndent(t *testing.T) {
	data, err := marshalIndent(map[string]string{"name": "<b>&"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"<b>&\"\n}", string(data))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, writeFileAtomic(path, []byte("first")))
	require.NoError(t, writeFileAtomic(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(DefaultFilePerm), fi.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	err = writeFileAtomic(filepath.Join(dir, "missing", "out.json"), []byte("x"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFileAtomicFailureLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.json")
	require.NoError(t, os.Mkdir(target, 0o755))

	err := writeFileAtomic(target, []byte("x"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}
