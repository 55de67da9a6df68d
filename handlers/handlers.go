package handlers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"deltasylva_site/config"
	"deltasylva_site/logger"
	"deltasylva_site/models"
	"deltasylva_site/templates/pages"

	"github.com/a-h/templ"
)

// Handler serves the site. Site and Config are fixed after startup.
type Handler struct {
	Site   *models.Site
	Config *config.Config
	Log    *logger.Logger

	now func() time.Time
}

// NewHandler creates a Handler for the loaded site content
func NewHandler(site *models.Site, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		Site:   site,
		Config: cfg,
		Log:    log,
		now:    time.Now,
	}
}

// Page returns the landing page component for the current year
func (h *Handler) Page() templ.Component {
	return pages.Landing(h.Site, pages.LandingProps{
		Year:    h.now().Year(),
		BaseURL: h.Config.AppURL,
		NoIndex: !h.Config.IsProduction(),
	})
}

// RenderPage renders the landing page into memory
func (h *Handler) RenderPage(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.Page().Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}
