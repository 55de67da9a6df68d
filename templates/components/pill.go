package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Pill renders a rounded label
func Pill(text string) g.Node {
	return Span(Class("pill"), g.Text(text))
}

// ArrowIcon is the download-style arrow used on the quote button
func ArrowIcon() g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "currentColor"),
		g.Attr("aria-hidden", "true"),
		Class("btn-icon"),
		g.El("path", g.Attr("d", "M13.5 4.5a.75.75 0 0 0-1.5 0v7.69l-2.72-2.72a.75.75 0 1 0-1.06 1.06l4 4a.75.75 0 0 0 1.28-.53v-9.5Z")),
		g.El("path", g.Attr("d", "M4.5 12a7.5 7.5 0 1 1 12.73 5.3.75.75 0 1 1-1.06-1.06A6 6 0 1 0 6 12a.75.75 0 0 1-1.5 0Z")),
	)
}

// CheckIcon is the bullet mark of card point lists
func CheckIcon() g.Node {
	return g.El("svg",
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.El("path", g.Attr("d", "M20 6 9 17l-5-5")),
	)
}
