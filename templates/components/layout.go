package components

import (
	"deltasylva_site/middleware"
	"deltasylva_site/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LayoutProps configures the document shell
type LayoutProps struct {
	SEO   models.SEO
	Nonce string
	// Organization is emitted as JSON-LD when set
	Organization *Organization
}

// Organization is the schema.org Organization JSON-LD of the studio
type Organization struct {
	Context string `json:"@context"`
	Type    string `json:"@type"`
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Email   string `json:"email,omitempty"`
}

// NewOrganization builds the JSON-LD for a brand served from baseURL
func NewOrganization(brand models.Brand, baseURL string) *Organization {
	return &Organization{
		Context: "https://schema.org",
		Type:    "Organization",
		Name:    brand.Name,
		URL:     baseURL + "/",
		Logo:    baseURL + brand.Logo,
		Email:   brand.Email,
	}
}

// Layout renders a complete HTML document around body
func Layout(props LayoutProps, body ...g.Node) g.Node {
	seo := props.SEO
	return Doctype(
		HTML(
			Lang(seo.GetLocale()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(seo.Title)),
				Meta(Name("description"), Content(seo.Description)),
				g.If(seo.Keywords != "", Meta(Name("keywords"), Content(seo.Keywords))),
				g.If(seo.NoIndex, Meta(Name("robots"), Content("noindex, nofollow"))),
				g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),
				g.If(seo.ThemeColor != "", Meta(Name("theme-color"), Content(seo.ThemeColor))),

				// Open Graph / Twitter
				Meta(g.Attr("property", "og:title"), Content(seo.GetOGTitle())),
				Meta(g.Attr("property", "og:description"), Content(seo.GetOGDesc())),
				g.If(seo.OGType != "", Meta(g.Attr("property", "og:type"), Content(seo.OGType))),
				g.If(seo.Canonical != "", Meta(g.Attr("property", "og:url"), Content(seo.Canonical))),
				g.If(seo.OGImage != "", Meta(g.Attr("property", "og:image"), Content(seo.OGImage))),
				g.If(seo.TwitterCard != "", Meta(Name("twitter:card"), Content(seo.TwitterCard))),

				// Icons and manifest
				g.If(seo.Icons.Icon != "", Link(Rel("icon"), Type("image/png"), Href(seo.Icons.Icon))),
				g.If(seo.Icons.Shortcut != "", Link(Rel("shortcut icon"), Href(seo.Icons.Shortcut))),
				g.If(seo.Icons.Apple != "", Link(Rel("apple-touch-icon"), Href(seo.Icons.Apple))),
				g.If(seo.Manifest != "", Link(Rel("manifest"), Href(seo.Manifest))),

				Link(Rel("stylesheet"), Href(middleware.AssetURL("css/site.css"))),
				Script(Src(middleware.AssetURL("js/reveal.js")), Defer(), nonceAttr(props.Nonce)),
				g.If(props.Organization != nil, organizationLD(props.Organization, props.Nonce)),
			),
			Body(body...),
		),
	)
}

func organizationLD(org *Organization, nonce string) g.Node {
	return Script(Type("application/ld+json"), nonceAttr(nonce), g.Raw(JSON(org)))
}

func nonceAttr(nonce string) g.Node {
	if nonce == "" {
		return nil
	}
	return g.Attr("nonce", nonce)
}
