package instances

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
	"github.com/XiaoConstantine/knapsack-go/pkg/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointRemoteAt redirects instance downloads to a local test server for
// the duration of the test.
func pointRemoteAt(t *testing.T, server *httptest.Server) {
	t.Helper()
	orig := RemoteInstanceURL
	RemoteInstanceURL = server.URL + "/%s/test.in"
	t.Cleanup(func() { RemoteInstanceURL = orig })
}

func TestEnsureMaterializesBuiltin(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := Ensure("tiny")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".knapsack-go", "instances", "tiny.txt"), path)

	instance, err := knapsack.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, instance.NumItems())
	assert.Equal(t, uint64(10), instance.Capacity())
}

func TestEnsureReusesCachedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	pointRemoteAt(t, server)

	dir := filepath.Join(home, ".knapsack-go", "instances")
	require.NoError(t, os.MkdirAll(dir, 0755))
	cached := filepath.Join(dir, "cached.txt")
	require.NoError(t, os.WriteFile(cached, []byte("1\n7 4 2\n5\n"), 0644))

	path, err := Ensure("cached")
	require.NoError(t, err)
	assert.Equal(t, cached, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n7 4 2\n5\n", string(data))
	assert.Equal(t, 0, requests, "a cached instance must not be re-downloaded")
}

func TestEnsureDownloadsUnknownName(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/n_100_c_1000/test.in", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("2\n1 4 3\n2 6 5\n7\n")); err != nil {
			return
		}
	}))
	defer server.Close()
	pointRemoteAt(t, server)

	path, err := Ensure("n_100_c_1000")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".knapsack-go", "instances", "n_100_c_1000.txt"), path)

	instance, err := knapsack.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, instance.NumItems())
	assert.Equal(t, uint64(7), instance.Capacity())
}

func TestEnsureDownloadNotFound(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	pointRemoteAt(t, server)

	_, err := Ensure("no-such-benchmark")
	require.Error(t, err)
	assert.Equal(t, errors.ResourceNotFound, errors.CodeOf(err))
}
