package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileIOWriteReadExists(t *testing.T) {
	fio := NewOSFileIO()
	path := filepath.Join(t.TempDir(), "sample.txt")

	assert.False(t, fio.Exists(path))

	require.NoError(t, fio.WriteFile(path, "hello world"))
	assert.True(t, fio.Exists(path))

	content, err := fio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}

func TestOSFileIOReadMissingFileErrors(t *testing.T) {
	fio := NewOSFileIO()
	_, err := fio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
