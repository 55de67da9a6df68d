package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Robots returns robots.txt. Only production is indexable.
func Robots(baseURL string, production bool) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if production {
		b.WriteString("Allow: /\n")
	} else {
		b.WriteString("Disallow: /\n")
	}
	b.WriteString("Sitemap: " + baseURL + "/sitemap.xml\n")
	return b.String()
}

// RobotsHandler serves robots.txt
func (h *Handler) RobotsHandler(c echo.Context) error {
	return c.String(http.StatusOK, Robots(h.Config.AppURL, h.Config.IsProduction()))
}

// HealthzHandler reports that the process is up
func HealthzHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
