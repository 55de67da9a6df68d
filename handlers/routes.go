package handlers

import (
	"deltasylva_site/middleware"
	"deltasylva_site/static"

	"github.com/labstack/echo/v4"
)

// Register mounts every route of the site on e
func Register(e *echo.Echo, h *Handler) {
	e.GET("/", h.LandingHandler)
	e.GET("/index.md", h.MarkdownHandler)
	e.GET("/sitemap.xml", h.SitemapHandler)
	e.GET("/robots.txt", h.RobotsHandler)
	e.GET("/healthz", HealthzHandler)

	// Static files
	assets := e.Group("/static", middleware.StaticCache())
	assets.StaticFS("/", static.FS)

	// Fixed root paths referenced by the manifest and browsers
	e.FileFS("/favicon.png", "images/favicon.png", static.FS, middleware.StaticCache())
	e.FileFS("/logo.png", "images/logo.png", static.FS, middleware.StaticCache())
	e.FileFS("/site.webmanifest", "site.webmanifest", static.FS, middleware.StaticCache())
}
