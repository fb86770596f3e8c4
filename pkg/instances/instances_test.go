package instances

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
	"github.com/XiaoConstantine/knapsack-go/pkg/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"small_1", "small_2", "tiny"}, Names())
}

func TestIsBuiltin(t *testing.T) {
	assert.True(t, IsBuiltin("tiny"))
	assert.True(t, IsBuiltin("small_1"))
	assert.True(t, IsBuiltin("small_2"))
	assert.False(t, IsBuiltin("jooken_n_100"))
	assert.False(t, IsBuiltin(""))
}

func TestReaderUnknownName(t *testing.T) {
	_, err := Reader("no-such-instance")
	require.Error(t, err)
	assert.Equal(t, errors.ResourceNotFound, errors.CodeOf(err))
}

func TestLoadBuiltins(t *testing.T) {
	tests := []struct {
		name     string
		numItems int
		capacity uint64
	}{
		{name: "tiny", numItems: 3, capacity: 10},
		{name: "small_1", numItems: 10, capacity: 121},
		{name: "small_2", numItems: 20, capacity: 278},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instance, err := Load(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.numItems, instance.NumItems())
			assert.Equal(t, tt.capacity, instance.Capacity())
		})
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.txt")
	require.NoError(t, WriteFile("tiny", path))

	instance, err := knapsack.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, instance.NumItems())
	assert.Equal(t, uint64(10), instance.Capacity())
}

func TestWriteFileUnknownName(t *testing.T) {
	err := WriteFile("no-such-instance", filepath.Join(t.TempDir(), "out.txt"))
	require.Error(t, err)
	assert.Equal(t, errors.ResourceNotFound, errors.CodeOf(err))
}

func TestResolvePrefersFileOverBuiltin(t *testing.T) {
	// A file whose name collides with a bundled instance must win.
	path := filepath.Join(t.TempDir(), "tiny")
	require.NoError(t, os.WriteFile(path, []byte("1\n1 2 3\n99\n"), 0644))

	instance, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 1, instance.NumItems())
	assert.Equal(t, uint64(99), instance.Capacity())
}

func TestResolveBuiltinName(t *testing.T) {
	instance, err := Resolve("small_1")
	require.NoError(t, err)
	assert.Equal(t, 10, instance.NumItems())
	assert.Equal(t, uint64(121), instance.Capacity())
}

func TestResolveMissingFile(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "no-such-file.txt"))
	require.Error(t, err)
	assert.Equal(t, errors.IOFailed, errors.CodeOf(err))
}
