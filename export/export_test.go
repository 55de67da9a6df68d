package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"deltasylva_site/config"
	"deltasylva_site/content"
	"deltasylva_site/handlers"
	"deltasylva_site/logger"
	"deltasylva_site/services"
	"deltasylva_site/static"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExporter(t *testing.T, storage services.StorageProvider) *Exporter {
	t.Helper()
	site, err := content.Load()
	require.NoError(t, err)

	cfg := &config.Config{Environment: "production", AppURL: "https://deltasylva.com"}
	return &Exporter{
		Handler: handlers.NewHandler(site, cfg, logger.Nop()),
		Assets:  static.FS,
		Storage: storage,
		Log:     logger.Nop(),
	}
}

func keys(files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Key)
	}
	return out
}

func TestBuild(t *testing.T) {
	x := newExporter(t, services.NewLocalStorage(t.TempDir()))

	files, err := x.Build(context.Background())
	require.NoError(t, err)

	got := keys(files)
	assert.Equal(t, []string{"index.html", "index.md", "sitemap.xml", "robots.txt"}, got[:4])
	for _, key := range []string{
		"static/css/site.css",
		"static/js/reveal.js",
		"static/images/logo.png",
		"static/site.webmanifest",
		"favicon.png",
		"logo.png",
		"site.webmanifest",
	} {
		assert.Contains(t, got, key)
	}

	assert.Contains(t, string(files[0].Body), `<section id="contact"`)
	assert.Contains(t, string(files[1].Body), "Let's Talk About Your Project")
	assert.Contains(t, string(files[2].Body), "<loc>https://deltasylva.com/</loc>")
}

func TestBuildRefusesBrokenAnchors(t *testing.T) {
	x := newExporter(t, services.NewLocalStorage(t.TempDir()))
	x.Handler.Site.Nav[0].Target = "pricing"

	_, err := x.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken anchors")
}

func TestBuildMissingRootAsset(t *testing.T) {
	x := newExporter(t, services.NewLocalStorage(t.TempDir()))
	x.Assets = fstest.MapFS{"css/site.css": {Data: []byte("body{}")}}

	_, err := x.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "favicon.png")
}

func TestRunLocal(t *testing.T) {
	dir := t.TempDir()
	x := newExporter(t, services.NewLocalStorage(dir))

	result, err := x.Run(context.Background())
	require.NoError(t, err)
	assert.Greater(t, result.Files, 7)
	assert.Greater(t, result.Bytes, int64(0))
	assert.Equal(t, "/index.html", result.URL)

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(html), "<!doctype html>"))

	_, err = os.Stat(filepath.Join(dir, "static", "js", "reveal.js"))
	assert.NoError(t, err)

	robots, err := os.ReadFile(filepath.Join(dir, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Allow: /")

	var m manifest
	raw, err := os.ReadFile(filepath.Join(dir, ManifestKey))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Len(t, m.Keys, result.Files)
	assert.Contains(t, m.Keys, "index.html")
	assert.NotContains(t, m.Keys, ManifestKey)
}

// seedPreviousExport leaves a stale file and a manifest listing it
func seedPreviousExport(t *testing.T, storage services.StorageProvider) {
	t.Helper()
	ctx := context.Background()
	_, err := storage.UploadReader(ctx, strings.NewReader("old"), "static/js/old.js", "text/javascript", 3)
	require.NoError(t, err)

	body := `{"keys":["index.html","static/js/old.js","gone.html"]}`
	_, err = storage.UploadReader(ctx, strings.NewReader(body), ManifestKey, "application/json", int64(len(body)))
	require.NoError(t, err)
}

func TestRunPrune(t *testing.T) {
	t.Run("deletes keys the build no longer produces", func(t *testing.T) {
		dir := t.TempDir()
		storage := services.NewLocalStorage(dir)
		seedPreviousExport(t, storage)
		x := newExporter(t, storage)
		x.Prune = true

		result, err := x.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, result.Pruned)

		_, err = os.Stat(filepath.Join(dir, "static", "js", "old.js"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(dir, "index.html"))
		assert.NoError(t, err)
	})

	t.Run("keeps stale keys without prune", func(t *testing.T) {
		dir := t.TempDir()
		storage := services.NewLocalStorage(dir)
		seedPreviousExport(t, storage)
		x := newExporter(t, storage)

		result, err := x.Run(context.Background())
		require.NoError(t, err)
		assert.Zero(t, result.Pruned)

		_, err = os.Stat(filepath.Join(dir, "static", "js", "old.js"))
		assert.NoError(t, err)
	})

	t.Run("corrupt manifest fails before upload", func(t *testing.T) {
		dir := t.TempDir()
		storage := services.NewLocalStorage(dir)
		_, err := storage.UploadReader(context.Background(), strings.NewReader("{"), ManifestKey, "application/json", 1)
		require.NoError(t, err)
		x := newExporter(t, storage)
		x.Prune = true

		_, err = x.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), ManifestKey)
		_, err = os.Stat(filepath.Join(dir, "index.html"))
		assert.True(t, os.IsNotExist(err))
	})
}

// unconfiguredStorage is a provider whose credentials are missing
type unconfiguredStorage struct {
	*services.LocalStorage
}

func (unconfiguredStorage) IsConfigured() bool { return false }

func TestRunRequiresConfiguredStorage(t *testing.T) {
	dir := t.TempDir()
	x := newExporter(t, unconfiguredStorage{services.NewLocalStorage(dir)})

	_, err := x.Run(context.Background())
	require.ErrorIs(t, err, ErrStorageNotConfigured)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
