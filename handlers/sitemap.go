package handlers

import (
	"encoding/xml"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap lists the public URLs of the site
func BuildSitemap(baseURL string) SitemapURLSet {
	return SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{Loc: baseURL + "/", ChangeFreq: "monthly", Priority: 1.0},
		},
	}
}

// WriteSitemap encodes the sitemap with its XML header
func WriteSitemap(w io.Writer, baseURL string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	return encoder.Encode(BuildSitemap(baseURL))
}

// SitemapHandler serves sitemap.xml
func (h *Handler) SitemapHandler(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response().Writer, h.Config.AppURL)
}
