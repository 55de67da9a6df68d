package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"deltasylva_site/config"
	"deltasylva_site/content"
	"deltasylva_site/export"
	"deltasylva_site/handlers"
	"deltasylva_site/logger"
	"deltasylva_site/middleware"
	"deltasylva_site/services"
	"deltasylva_site/static"
)

func main() {
	publish := flag.Bool("publish", false, "upload the export to the configured R2 bucket instead of EXPORT_DIR")
	prune := flag.Bool("prune", false, "delete files left over from the previous export")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall export timeout")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	site, err := content.Load()
	if err != nil {
		log.Fatal("Invalid site content", "error", err)
	}
	middleware.InitAssetVersions(static.FS)

	storage, err := services.NewStorage(ctx, cfg, *publish, log)
	if err != nil {
		log.Fatal("Failed to initialize storage", "error", err)
	}

	x := &export.Exporter{
		Handler: handlers.NewHandler(site, cfg, log),
		Assets:  static.FS,
		Storage: storage,
		Log:     log,
		Prune:   *prune,
	}

	result, err := x.Run(ctx)
	if err != nil {
		log.Fatal("Export failed", "error", err)
	}
	log.Info("Export complete", "files", result.Files, "bytes", result.Bytes, "pruned", result.Pruned, "url", result.URL)
}
