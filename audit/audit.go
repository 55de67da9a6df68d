// Package audit checks the reveal behaviour of a rendered page. It scrolls the
// page in steps and compares the DOM state of every [data-reveal] block with
// the state a reveal.Presenter reaches for the same geometry.
package audit

import (
	"context"
	"errors"
	"fmt"
	"math"

	"deltasylva_site/services/reveal"
)

// DefaultStep is the scroll distance between two samples, in CSS pixels
const DefaultStep = 120.0

// Block is a measured [data-reveal] element
type Block struct {
	Key       string      `json:"key"`
	Threshold float64     `json:"threshold"`
	Once      bool        `json:"once"`
	Rect      reveal.Rect `json:"rect"`
}

// Layout is the page geometry at load time
type Layout struct {
	Viewport       reveal.Viewport `json:"viewport"`
	DocumentHeight float64         `json:"documentHeight"`
	Blocks         []Block         `json:"blocks"`
}

// Snapshot is the DOM after a scroll: the effective scroll offset and the
// data-reveal-state of every block keyed by data-reveal
type Snapshot struct {
	ScrollY float64           `json:"scrollY"`
	States  map[string]string `json:"states"`
}

// Page is an inspectable, scrollable page
type Page interface {
	Measure() (*Layout, error)
	ScrollTo(y float64) (*Snapshot, error)
}

// Mismatch is a block whose DOM state differs from the presenter
type Mismatch struct {
	Key      string
	ScrollY  float64
	Expected reveal.State
	Actual   reveal.State
}

// Regression is a block that went back from shown to hidden in the DOM
type Regression struct {
	Key     string
	ScrollY float64
}

// Report is the result of an audit run
type Report struct {
	Blocks      int
	Steps       int
	Mismatches  []Mismatch
	Regressions []Regression
	// Missing lists blocks that disappeared from the DOM during the run
	Missing []string
	// NeverShown lists blocks still hidden after the whole page was scrolled
	NeverShown []string
}

// Err returns nil when the DOM followed the presenters at every step
func (r *Report) Err() error {
	var errs []error
	for _, m := range r.Mismatches {
		errs = append(errs, fmt.Errorf("%s at y=%.0f: expected %s, got %s", m.Key, m.ScrollY, m.Expected, m.Actual))
	}
	for _, g := range r.Regressions {
		errs = append(errs, fmt.Errorf("%s at y=%.0f: shown block was hidden again", g.Key, g.ScrollY))
	}
	for _, key := range r.Missing {
		errs = append(errs, fmt.Errorf("%s: block missing from the page", key))
	}
	return errors.Join(errs...)
}

// Run scrolls page from top to bottom and back, step pixels at a time.
// step <= 0 uses DefaultStep.
func Run(ctx context.Context, page Page, step float64) (*Report, error) {
	if step <= 0 {
		step = DefaultStep
	}

	layout, err := page.Measure()
	if err != nil {
		return nil, fmt.Errorf("failed to measure page: %w", err)
	}

	src := reveal.NewScrollSource()
	presenters := make(map[string]*reveal.Presenter, len(layout.Blocks))
	for _, b := range layout.Blocks {
		if _, dup := presenters[b.Key]; dup {
			return nil, fmt.Errorf("duplicate reveal key %q", b.Key)
		}
		opts := reveal.DefaultOptions().WithThreshold(b.Threshold)
		opts.Once = b.Once
		src.SetRect(b.Key, b.Rect)
		presenters[b.Key] = reveal.New(b.Key, opts)
	}

	vp := layout.Viewport
	vp.ScrollY = 0
	src.Scroll(vp)
	for _, b := range layout.Blocks {
		if err := presenters[b.Key].Mount(src); err != nil {
			return nil, err
		}
	}

	report := &Report{Blocks: len(layout.Blocks)}
	last := make(map[string]reveal.State, len(layout.Blocks))
	missing := make(map[string]bool)

	for _, y := range ScrollPositions(layout.DocumentHeight, vp.Height, step) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		snap, err := page.ScrollTo(y)
		if err != nil {
			return nil, fmt.Errorf("failed to scroll to %.0f: %w", y, err)
		}
		vp.ScrollY = snap.ScrollY
		src.Scroll(vp)
		report.Steps++

		for _, b := range layout.Blocks {
			raw, ok := snap.States[b.Key]
			if !ok {
				if !missing[b.Key] {
					missing[b.Key] = true
					report.Missing = append(report.Missing, b.Key)
				}
				continue
			}
			actual, err := reveal.ParseState(raw)
			if err != nil {
				return nil, err
			}

			expected := presenters[b.Key].State()
			if actual != expected {
				report.Mismatches = append(report.Mismatches, Mismatch{
					Key: b.Key, ScrollY: snap.ScrollY, Expected: expected, Actual: actual,
				})
			}
			if b.Once && last[b.Key] == reveal.Shown && actual == reveal.Hidden {
				report.Regressions = append(report.Regressions, Regression{Key: b.Key, ScrollY: snap.ScrollY})
			}
			last[b.Key] = actual
		}
	}

	for _, b := range layout.Blocks {
		presenters[b.Key].Unmount()
		if presenters[b.Key].State() == reveal.Hidden {
			report.NeverShown = append(report.NeverShown, b.Key)
		}
	}
	return report, nil
}

// ScrollPositions returns the scroll offsets sampled by Run: from the top to
// the last reachable offset, then back to the top
func ScrollPositions(documentHeight, viewportHeight, step float64) []float64 {
	maxY := math.Max(0, documentHeight-viewportHeight)

	down := []float64{0}
	for y := step; y < maxY; y += step {
		down = append(down, y)
	}
	if maxY > 0 {
		down = append(down, maxY)
	}

	positions := append([]float64{}, down...)
	for i := len(down) - 2; i >= 0; i-- {
		positions = append(positions, down[i])
	}
	return positions
}
