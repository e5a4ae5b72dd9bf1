package show_test

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickpage/tldr/pkg/cache"
	"github.com/quickpage/tldr/pkg/commands/show"
	"github.com/quickpage/tldr/pkg/config"
	"github.com/quickpage/tldr/pkg/errors"
	"github.com/quickpage/tldr/pkg/paths"
)

func testEnv(t *testing.T) (*config.Settings, paths.Paths) {
	t.Helper()
	t.Setenv("LANGUAGE", "")
	t.Setenv("LANG", "")

	settings, err := config.Load("")
	require.NoError(t, err)
	settings.Platform = "linux"

	p, err := paths.New(t.TempDir())
	require.NoError(t, err)
	return settings, p
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// freshMarker keeps Show from triggering a refresh during cache-hit tests
func freshMarker(t *testing.T, p paths.Paths) {
	t.Helper()
	writeFile(t, p.IndexPath(), "{}")
}

func zipServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	archive := buf.Bytes()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestShowCacheHit(t *testing.T) {
	settings, p := testEnv(t)
	freshMarker(t, p)
	writeFile(t, p.PagePath("", "linux", "tar"), "# tar\n")

	result, err := show.Show(show.Options{Settings: settings, Paths: p, Command: "tar"})
	require.NoError(t, err)

	assert.True(t, result.FromCache)
	assert.Equal(t, "# tar\n", result.Content)
	assert.Equal(t, p.PagePath("", "linux", "tar"), result.Source)
}

func TestShowStaleCacheTriggersRefresh(t *testing.T) {
	settings, p := testEnv(t)
	// No marker at all: the mirror counts as stale.
	server := zipServer(t, map[string]string{
		"index.json":         "{}",
		"pages/linux/tar.md": "# tar from refresh\n",
	})

	result, err := show.Show(show.Options{
		Settings: settings,
		Paths:    p,
		Command:  "tar",
		Updater:  cache.NewUpdater(p, server.URL),
	})
	require.NoError(t, err)
	assert.Equal(t, "# tar from refresh\n", result.Content)
}

func TestShowRefreshFailureDegradesToCachedPage(t *testing.T) {
	settings, p := testEnv(t)
	writeFile(t, p.PagePath("", "linux", "tar"), "# cached tar\n")

	result, err := show.Show(show.Options{
		Settings: settings,
		Paths:    p,
		Command:  "tar",
		Updater:  cache.NewUpdater(p, "http://127.0.0.1:1/archive.zip"),
	})
	require.NoError(t, err)
	assert.Equal(t, "# cached tar\n", result.Content)
}

func TestShowCacheMissFallsBackToDirectFetch(t *testing.T) {
	settings, p := testEnv(t)
	freshMarker(t, p)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/common/tar.md" {
			_, _ = w.Write([]byte("# tar over the wire\n"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	result, err := show.Show(show.Options{
		Settings: settings,
		Paths:    p,
		Command:  "tar",
		Fetcher:  cache.NewFetcher(server.URL),
	})
	require.NoError(t, err)

	assert.False(t, result.FromCache)
	assert.Equal(t, "# tar over the wire\n", result.Content)
}

func TestShowCachingDisabledSkipsCascade(t *testing.T) {
	settings, p := testEnv(t)
	settings.Cache.Enabled = false

	// Cached copies exist but must not be consulted.
	freshMarker(t, p)
	writeFile(t, p.PagePath("", "linux", "tar"), "# cached\n")
	writeFile(t, p.LocalPagePath("tar"), "# local override\n")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# fetched\n"))
	}))
	defer server.Close()

	result, err := show.Show(show.Options{
		Settings: settings,
		Paths:    p,
		Command:  "tar",
		Fetcher:  cache.NewFetcher(server.URL),
	})
	require.NoError(t, err)

	assert.False(t, result.FromCache)
	assert.Equal(t, "# fetched\n", result.Content)
}

func TestShowNotFoundAnywhere(t *testing.T) {
	settings, p := testEnv(t)
	freshMarker(t, p)

	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := show.Show(show.Options{
		Settings: settings,
		Paths:    p,
		Command:  "no-such-command",
		Fetcher:  cache.NewFetcher(server.URL),
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPageNotFound))
}

func TestShowEmptyCommand(t *testing.T) {
	settings, p := testEnv(t)

	_, err := show.Show(show.Options{Settings: settings, Paths: p, Command: ""})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
