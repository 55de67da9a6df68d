// Package export builds the site as static files and writes them to a
// StorageProvider (local directory or R2 bucket).
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"deltasylva_site/handlers"
	"deltasylva_site/logger"
	"deltasylva_site/services"
)

// File is one exported object
type File struct {
	Key  string
	Body []byte
}

// rootAssets are served at fixed root paths in addition to static/
var rootAssets = []struct{ key, src string }{
	{"favicon.png", "images/favicon.png"},
	{"logo.png", "images/logo.png"},
	{"site.webmanifest", "site.webmanifest"},
}

// ManifestKey lists the keys written by the last export
const ManifestKey = "export-manifest.json"

// ErrStorageNotConfigured is returned by Run when Storage cannot accept writes
var ErrStorageNotConfigured = errors.New("export storage is not configured")

// Exporter renders the site and writes it to Storage
type Exporter struct {
	Handler *handlers.Handler
	Assets  fs.FS
	Storage services.StorageProvider
	Log     *logger.Logger
	// Prune deletes keys listed in the previous manifest that this export
	// no longer produces
	Prune bool
}

// Result summarises a finished export
type Result struct {
	Files  int
	Bytes  int64
	Pruned int
	URL    string
}

type manifest struct {
	Keys []string `json:"keys"`
}

// Build renders every file of the site. The page is checked for broken
// in-page links before anything is returned.
func (x *Exporter) Build(ctx context.Context) ([]File, error) {
	page, err := x.Handler.RenderPage(ctx)
	if err != nil {
		return nil, err
	}

	report, err := services.CheckAnchors(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}
	if err := report.Err(); err != nil {
		return nil, fmt.Errorf("page has broken anchors: %w", err)
	}

	md, err := services.PageMarkdown(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	var sitemap bytes.Buffer
	if err := handlers.WriteSitemap(&sitemap, x.Handler.Config.AppURL); err != nil {
		return nil, fmt.Errorf("failed to build sitemap: %w", err)
	}

	cfg := x.Handler.Config
	files := []File{
		{Key: "index.html", Body: page},
		{Key: "index.md", Body: md},
		{Key: "sitemap.xml", Body: sitemap.Bytes()},
		{Key: "robots.txt", Body: []byte(handlers.Robots(cfg.AppURL, cfg.IsProduction()))},
	}

	assets, err := x.assetFiles()
	if err != nil {
		return nil, err
	}
	return append(files, assets...), nil
}

func (x *Exporter) assetFiles() ([]File, error) {
	var files []File
	err := fs.WalkDir(x.Assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := fs.ReadFile(x.Assets, p)
		if err != nil {
			return err
		}
		files = append(files, File{Key: path.Join("static", p), Body: body})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read static assets: %w", err)
	}

	for _, a := range rootAssets {
		body, err := fs.ReadFile(x.Assets, a.src)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", a.key, err)
		}
		files = append(files, File{Key: a.key, Body: body})
	}
	return files, nil
}

// Run builds the site and uploads every file, then records the uploaded
// keys in the manifest
func (x *Exporter) Run(ctx context.Context) (*Result, error) {
	if !x.Storage.IsConfigured() {
		return nil, ErrStorageNotConfigured
	}

	files, err := x.Build(ctx)
	if err != nil {
		return nil, err
	}

	previous, err := x.readManifest(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{URL: x.Storage.GetPublicURL("index.html")}
	for _, f := range files {
		res, err := x.Storage.UploadReader(ctx, bytes.NewReader(f.Body), f.Key, services.ContentTypeFor(f.Key), int64(len(f.Body)))
		if err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.Key, err)
		}
		x.Log.Debug("Exported file", "key", res.Key, "size", res.FileSize, "type", res.MimeType)
		result.Files++
		result.Bytes += res.FileSize
	}

	if err := x.verify(ctx, "index.html", int64(len(files[0].Body))); err != nil {
		return nil, err
	}

	current := make([]string, 0, len(files))
	for _, f := range files {
		current = append(current, f.Key)
	}
	if x.Prune {
		if result.Pruned, err = x.prune(ctx, previous, current); err != nil {
			return nil, err
		}
	}
	if err := x.writeManifest(ctx, current); err != nil {
		return nil, err
	}
	return result, nil
}

// readManifest returns the keys of the previous export. A missing manifest
// means there was none.
func (x *Exporter) readManifest(ctx context.Context) ([]string, error) {
	rc, _, err := x.Storage.Get(ctx, ManifestKey)
	if errors.Is(err, services.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestKey, err)
	}
	defer rc.Close()

	var m manifest
	if err := json.NewDecoder(rc).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ManifestKey, err)
	}
	return m.Keys, nil
}

func (x *Exporter) writeManifest(ctx context.Context, keys []string) error {
	body, err := json.Marshal(manifest{Keys: keys})
	if err != nil {
		return err
	}
	if _, err := x.Storage.UploadReader(ctx, bytes.NewReader(body), ManifestKey, services.ContentTypeFor(ManifestKey), int64(len(body))); err != nil {
		return fmt.Errorf("failed to write %s: %w", ManifestKey, err)
	}
	return nil
}

// prune deletes every previous key missing from current
func (x *Exporter) prune(ctx context.Context, previous, current []string) (int, error) {
	keep := make(map[string]bool, len(current)+1)
	for _, k := range current {
		keep[k] = true
	}
	keep[ManifestKey] = true

	pruned := 0
	for _, k := range previous {
		if keep[k] {
			continue
		}
		if err := x.Storage.Delete(ctx, k); err != nil {
			return pruned, fmt.Errorf("failed to prune %s: %w", k, err)
		}
		x.Log.Debug("Pruned stale file", "key", k)
		pruned++
	}
	return pruned, nil
}

// verify reads an uploaded object back and compares its size
func (x *Exporter) verify(ctx context.Context, key string, size int64) error {
	rc, _, err := x.Storage.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read back %s: %w", key, err)
	}
	defer rc.Close()

	n, err := io.Copy(io.Discard, rc)
	if err != nil {
		return fmt.Errorf("failed to read back %s: %w", key, err)
	}
	if n != size {
		return fmt.Errorf("%s: stored %d bytes, expected %d", key, n, size)
	}
	return nil
}
