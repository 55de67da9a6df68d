package partials

import (
	"deltasylva_site/models"
	"deltasylva_site/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SiteNav is the sticky header with brand, section links and the quote button
func SiteNav(site *models.Site) g.Node {
	brand := site.Brand
	return Header(
		Class("site-header"),
		Div(
			Class("container"),
			A(
				Href("#"+brand.Homepage),
				Class("brand"),
				Img(Src(brand.Logo), Alt(brand.LogoAlt), Width("40"), Height("40")),
				Div(
					Div(Class("brand-name"), g.Text(brand.Name)),
					Div(Class("brand-tagline"), g.Text(brand.Tagline)),
				),
			),
			Nav(
				Class("nav-links"),
				g.Attr("aria-label", "Primary"),
				g.Map(site.Nav, func(l models.NavLink) g.Node {
					return A(Href(l.Href()), g.Text(l.Label))
				}),
			),
			A(
				Href(site.NavCTA.Href()),
				Class("btn btn-primary btn-small nav-cta"),
				g.Text(site.NavCTA.Label),
				components.ArrowIcon(),
			),
		),
	)
}
