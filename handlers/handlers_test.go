package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"deltasylva_site/config"
	"deltasylva_site/content"
	"deltasylva_site/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	site, err := content.Load()
	require.NoError(t, err)

	cfg := &config.Config{Environment: "production", AppURL: "https://deltasylva.com"}
	h := NewHandler(site, cfg, logger.Nop())
	h.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return h
}

func serve(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	Register(e, h)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLandingHandler(t *testing.T) {
	h := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.LandingHandler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.Contains(t, body, "Launch Your Ideas, Reach Users, Scale Up")
	assert.Contains(t, body, "© 2026 DeltaSylva")
	assert.Contains(t, body, `<link rel="canonical" href="https://deltasylva.com/">`)
}

func TestMarkdownHandler(t *testing.T) {
	rec := serve(t, newTestHandler(t), "/index.md")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MIMETextMarkdown, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.Contains(t, body, "# Launch Your Ideas, Reach Users, Scale Up")
	assert.Contains(t, body, "**website development**")
	assert.Contains(t, body, "## What We Do")
	assert.NotContains(t, body, "<section")
	// nav and footer are outside <main>
	assert.NotContains(t, body, "All rights reserved")
}

func TestSitemapHandler(t *testing.T) {
	rec := serve(t, newTestHandler(t), "/sitemap.xml")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<?xml"))
	assert.Contains(t, rec.Body.String(), "<loc>https://deltasylva.com/</loc>")
	assert.Contains(t, rec.Body.String(), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
}

func TestRobots(t *testing.T) {
	t.Run("production is indexable", func(t *testing.T) {
		rec := serve(t, newTestHandler(t), "/robots.txt")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User-agent: *\nAllow: /\nSitemap: https://deltasylva.com/sitemap.xml\n", rec.Body.String())
	})

	t.Run("other environments are not", func(t *testing.T) {
		assert.Contains(t, Robots("http://localhost:8080", false), "Disallow: /\n")
	})
}

func TestHealthzHandler(t *testing.T) {
	rec := serve(t, newTestHandler(t), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStaticRoutes(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		target string
		status int
		cache  string
	}{
		{"versioned stylesheet", "/static/css/site.css?v=abc", http.StatusOK, "public, max-age=31536000, immutable"},
		{"unversioned script", "/static/js/reveal.js", http.StatusOK, "public, max-age=3600"},
		{"favicon at root", "/favicon.png", http.StatusOK, "public, max-age=3600"},
		{"logo at root", "/logo.png", http.StatusOK, "public, max-age=3600"},
		{"manifest at root", "/site.webmanifest", http.StatusOK, "public, max-age=3600"},
		{"missing asset", "/static/css/missing.css", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			if tt.cache != "" {
				assert.Equal(t, tt.cache, rec.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestPageNoIndexOutsideProduction(t *testing.T) {
	h := newTestHandler(t)
	page, err := h.RenderPage(t.Context())
	require.NoError(t, err)
	assert.NotContains(t, string(page), `name="robots"`)

	h.Config = &config.Config{Environment: "development", AppURL: "http://localhost:8080"}
	page, err = h.RenderPage(t.Context())
	require.NoError(t, err)
	assert.Contains(t, string(page), `<meta name="robots" content="noindex, nofollow">`)
	assert.Contains(t, Robots(h.Config.AppURL, h.Config.IsProduction()), "Disallow: /")
}

func TestRenderPage(t *testing.T) {
	h := newTestHandler(t)
	page, err := h.RenderPage(t.Context())
	require.NoError(t, err)
	assert.Contains(t, string(page), `<section id="home"`)
}
