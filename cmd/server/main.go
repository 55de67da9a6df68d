package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deltasylva_site/config"
	"deltasylva_site/content"
	"deltasylva_site/handlers"
	"deltasylva_site/logger"
	"deltasylva_site/middleware"
	"deltasylva_site/services"
	"deltasylva_site/static"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	site, err := content.Load()
	if err != nil {
		log.Fatal("Invalid site content", "error", err)
	}

	middleware.InitAssetVersions(static.FS)

	h := handlers.NewHandler(site, cfg, log)
	if err := checkPage(context.Background(), h); err != nil {
		log.Fatal("Refusing to start with a broken page", "error", err)
	}

	e := newServer(cfg, h, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("Server starting", "port", cfg.ServerPort, "environment", cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}
	log.Info("Server stopped")
}

// checkPage renders the page once and verifies its in-page links
func checkPage(ctx context.Context, h *handlers.Handler) error {
	page, err := h.RenderPage(ctx)
	if err != nil {
		return err
	}
	report, err := services.CheckAnchors(bytes.NewReader(page))
	if err != nil {
		return err
	}
	return report.Err()
}

func newServer(cfg *config.Config, h *handlers.Handler, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	if cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	// Middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RPS:  cfg.RateLimitRPS,
		Skip: []string{"/healthz"},
	}))
	e.Use(echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{Level: 5}))

	handlers.Register(e, h)
	return e
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
