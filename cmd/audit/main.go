package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"deltasylva_site/audit"
	"deltasylva_site/config"
	"deltasylva_site/logger"
)

func main() {
	cfg := config.Load()
	defaults := audit.DefaultChromeOptions()

	url := flag.String("url", cfg.AppURL+"/", "page to audit")
	step := flag.Float64("step", audit.DefaultStep, "scroll step in CSS pixels")
	width := flag.Int64("width", defaults.Width, "viewport width")
	height := flag.Int64("height", defaults.Height, "viewport height")
	settle := flag.Duration("settle", defaults.Settle, "wait after each scroll")
	reducedMotion := flag.Bool("reduced-motion", false, "emulate prefers-reduced-motion: reduce")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall audit timeout")
	flag.Parse()

	log, err := logger.New(cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	page, closeBrowser, err := audit.OpenChrome(ctx, *url, audit.ChromeOptions{
		ExecPath: cfg.ChromePath,
		Width:    *width,
		Height:   *height,
		Settle:   *settle,

		ReducedMotion: *reducedMotion,
	})
	if err != nil {
		log.Fatal("Failed to open page", "url", *url, "error", err)
	}
	defer closeBrowser()

	report, err := audit.Run(ctx, page, *step)
	if err != nil {
		log.Fatal("Audit failed", "error", err)
	}

	for _, key := range report.NeverShown {
		log.Warn("Block never reached its threshold", "block", key)
	}
	if err := report.Err(); err != nil {
		log.Error("Reveal audit found problems",
			"blocks", report.Blocks,
			"steps", report.Steps,
			"mismatches", len(report.Mismatches),
			"regressions", len(report.Regressions),
			"error", err,
		)
		closeBrowser()
		log.Sync()
		os.Exit(1)
	}
	log.Info("Reveal audit passed", "url", *url, "blocks", report.Blocks, "steps", report.Steps)
}
