package handlers

import (
	"bytes"
	"net/http"

	"deltasylva_site/services"

	"github.com/labstack/echo/v4"
)

// MIMETextMarkdown is the content type of the markdown rendition
const MIMETextMarkdown = "text/markdown; charset=utf-8"

// LandingHandler renders the single-page site
func (h *Handler) LandingHandler(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	component := h.Page()
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// MarkdownHandler serves the main content of the page as markdown
func (h *Handler) MarkdownHandler(c echo.Context) error {
	page, err := h.RenderPage(c.Request().Context())
	if err != nil {
		return err
	}

	md, err := services.PageMarkdown(bytes.NewReader(page))
	if err != nil {
		h.Log.Error("Failed to convert page to markdown", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "markdown rendition unavailable")
	}

	return c.Blob(http.StatusOK, MIMETextMarkdown, md)
}
