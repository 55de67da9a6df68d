package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeOptions configures the headless browser
type ChromeOptions struct {
	// ExecPath overrides the browser binary (headless-shell in Docker)
	ExecPath string
	Width    int64
	Height   int64
	// Settle is the wait after each scroll before the DOM is read
	Settle time.Duration
	// ReducedMotion emulates prefers-reduced-motion: reduce
	ReducedMotion bool
	// InitScript runs in every new document before the page's own scripts
	InitScript string
}

// DefaultChromeOptions returns a desktop viewport with a short settle time
func DefaultChromeOptions() ChromeOptions {
	return ChromeOptions{
		Width:  1280,
		Height: 800,
		Settle: 150 * time.Millisecond,
	}
}

// ChromePage is a Page loaded in headless Chrome through chromedp
type ChromePage struct {
	ctx    context.Context
	settle time.Duration
}

const measureJS = `(() => {
  const sx = window.scrollX, sy = window.scrollY;
  return {
    viewport: { scrollX: sx, scrollY: sy, width: window.innerWidth, height: window.innerHeight },
    documentHeight: document.documentElement.scrollHeight,
    blocks: Array.from(document.querySelectorAll("[data-reveal]")).map((el) => {
      const r = el.getBoundingClientRect();
      return {
        key: el.getAttribute("data-reveal"),
        threshold: parseFloat(el.getAttribute("data-reveal-threshold")) || 0,
        once: el.getAttribute("data-reveal-once") !== "false",
        rect: { x: r.left + sx, y: r.top + sy, width: r.width, height: r.height },
      };
    }),
  };
})()`

const statesJS = `(() => {
  const states = {};
  document.querySelectorAll("[data-reveal]").forEach((el) => {
    states[el.getAttribute("data-reveal")] = el.getAttribute("data-reveal-state");
  });
  return { scrollY: window.scrollY, states: states };
})()`

// OpenChrome starts a browser, loads url and waits for the page to settle.
// The returned cancel func closes the browser.
func OpenChrome(ctx context.Context, url string, opts ChromeOptions) (*ChromePage, context.CancelFunc, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	cancel := func() {
		browserCancel()
		allocCancel()
	}

	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(opts.Width, opts.Height),
		emulatedMedia(opts.ReducedMotion),
		initScript(opts.InitScript),
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(opts.Settle),
	)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to load %s: %w", url, err)
	}

	return &ChromePage{ctx: browserCtx, settle: opts.Settle}, cancel, nil
}

func emulatedMedia(reducedMotion bool) chromedp.Action {
	value := "no-preference"
	if reducedMotion {
		value = "reduce"
	}
	return emulation.SetEmulatedMedia().WithFeatures([]*emulation.MediaFeature{
		{Name: "prefers-reduced-motion", Value: value},
	})
}

func initScript(src string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if src == "" {
			return nil
		}
		_, err := page.AddScriptToEvaluateOnNewDocument(src).Do(ctx)
		return err
	})
}

// Measure reads the viewport and the document rect of every block
func (p *ChromePage) Measure() (*Layout, error) {
	var layout Layout
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(measureJS, &layout)); err != nil {
		return nil, err
	}
	return &layout, nil
}

// ScrollTo scrolls the window, waits for observers to fire and reads the
// block states
func (p *ChromePage) ScrollTo(y float64) (*Snapshot, error) {
	var snap Snapshot
	err := chromedp.Run(p.ctx,
		chromedp.Evaluate(fmt.Sprintf("window.scrollTo({top: %f, behavior: 'instant'})", y), nil),
		chromedp.Sleep(p.settle),
		chromedp.Evaluate(statesJS, &snap),
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
