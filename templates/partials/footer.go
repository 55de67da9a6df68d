package partials

import (
	"fmt"

	"deltasylva_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SiteFooter renders the copyright line and the section links
func SiteFooter(site *models.Site, year int) g.Node {
	return Footer(
		Class("site-footer"),
		Div(
			Class("container"),
			Div(
				Class("footer-brand"),
				Img(Src(site.Brand.Logo), Alt(site.Brand.LogoAlt), Width("28"), Height("28")),
				Span(g.Text(fmt.Sprintf("© %d %s — All rights reserved.", year, site.Footer.Holder))),
			),
			Div(
				Class("footer-links"),
				g.Map(site.Footer.Links, func(l models.NavLink) g.Node {
					return A(Href(l.Href()), g.Text(l.Label))
				}),
			),
		),
	)
}

// FloatingCTA is the fixed quote link in the bottom corner
func FloatingCTA(link models.NavLink) g.Node {
	return A(Href(link.Href()), Class("floating-cta"), g.Text(link.Label))
}
