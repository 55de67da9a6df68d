package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"io/fs"
	"sync"

	"github.com/labstack/echo/v4"
)

// versionedAssets are hashed once at startup for cache busting
var versionedAssets = []string{
	"css/site.css",
	"js/reveal.js",
	"images/favicon.png",
	"images/logo.png",
	"site.webmanifest",
}

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes of the embedded assets
func InitAssetVersions(fsys fs.FS) {
	assetVersionsOnce.Do(func() {
		assetVersions = computeAssetVersions(fsys, versionedAssets)
	})
}

func computeAssetVersions(fsys fs.FS, paths []string) map[string]string {
	versions := make(map[string]string, len(paths))
	for _, p := range paths {
		if v := computeFileHash(fsys, p); v != "" {
			versions[p] = v
		}
	}
	return versions
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(fsys fs.FS, path string) string {
	file, err := fsys.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return ""
	}
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash of an embedded asset, "1" when unknown
func AssetVersion(path string) string {
	if v, ok := assetVersions[path]; ok {
		return v
	}
	return "1"
}

// AssetURL returns the versioned /static URL of an embedded asset
func AssetURL(path string) string {
	return "/static/" + path + "?v=" + AssetVersion(path)
}

// StaticCache sets long-lived cache headers on versioned asset requests and
// short ones otherwise
func StaticCache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.QueryParam("v") != "" {
				c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			} else {
				c.Response().Header().Set("Cache-Control", "public, max-age=3600")
			}
			return next(c)
		}
	}
}
