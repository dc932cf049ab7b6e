package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParamDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "d")
	require.NoError(t, os.MkdirAll(dir, 0o775))
	return dir
}

func TestPutAndGetParam(t *testing.T) {
	path := filepath.Join(testParamDir(t), "TestValue")

	require.NoError(t, PutParam(path, []byte("hello")))
	data, err := GetParam(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	// overwrite is atomic and leaves no temp files behind
	require.NoError(t, PutParam(path, []byte("world")))
	data, err = GetParam(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), data)

	files, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestRemoveParam(t *testing.T) {
	path := filepath.Join(testParamDir(t), "TestValue")
	require.NoError(t, PutParam(path, []byte("x")))
	require.NoError(t, RemoveParam(path))

	exists, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExists(t *testing.T) {
	path := filepath.Join(testParamDir(t), "Nope")
	exists, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}
