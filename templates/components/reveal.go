package components

import (
	"fmt"
	"strconv"
	"time"

	"deltasylva_site/services/reveal"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Reveal thresholds used across the page
var (
	// HeadingReveal is used for section headings and the contact block
	HeadingReveal = reveal.DefaultOptions()
	// CardReveal is used for cards inside grids
	CardReveal = reveal.DefaultOptions().WithThreshold(0.1)
	// HeroReveal reveals as soon as the hero touches the viewport, i.e. on load
	HeroReveal = reveal.DefaultOptions().WithThreshold(0)
)

// Reveal wraps children in a block that starts hidden and is shown once by
// static/js/reveal.js. key must be unique on the page.
func Reveal(key string, opts reveal.Options, children ...g.Node) g.Node {
	p := reveal.New(key, opts)
	opts = p.Options()
	tr := p.Transition()

	return Div(
		g.Attr("data-reveal", key),
		g.Attr("data-reveal-state", p.State().String()),
		g.Attr("data-reveal-threshold", strconv.FormatFloat(opts.Threshold, 'f', -1, 64)),
		g.Attr("data-reveal-once", strconv.FormatBool(opts.Once)),
		g.Attr("style", revealStyle(tr)),
		g.Group(children),
	)
}

func revealStyle(tr reveal.Transition) string {
	return fmt.Sprintf("--reveal-offset:%spx;--reveal-duration:%dms;--reveal-easing:%s",
		strconv.FormatFloat(tr.From.OffsetY, 'f', -1, 64),
		tr.Duration/time.Millisecond,
		tr.Easing,
	)
}
