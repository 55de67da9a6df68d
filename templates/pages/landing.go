package pages

import (
	"context"
	"fmt"

	"deltasylva_site/middleware"
	"deltasylva_site/models"
	"deltasylva_site/templates/components"
	"deltasylva_site/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingProps carries the per-render values of the landing page
type LandingProps struct {
	Year int
	// BaseURL is the public origin without trailing slash, used for canonical and JSON-LD
	BaseURL string
	// NoIndex keeps non-production deployments out of search results
	NoIndex bool
}

// Landing renders the whole single-page site
func Landing(site *models.Site, props LandingProps) templ.Component {
	return components.Render(func(ctx context.Context) g.Node {
		seo := site.SEO
		var org *components.Organization
		if props.BaseURL != "" {
			seo = *seo.WithCanonical(props.BaseURL + "/")
			org = components.NewOrganization(site.Brand, props.BaseURL)
		}
		if props.NoIndex {
			seo.WithNoIndex()
		}

		return components.Layout(
			components.LayoutProps{
				SEO:          seo,
				Nonce:        middleware.GetNonce(ctx),
				Organization: org,
			},
			partials.SiteNav(site),
			Main(
				heroBlock(site.Hero),
				servicesBlock(site.Services),
				casesBlock(site.Cases),
				processBlock(site.Process),
				stackBlock(site.Stack),
				contactBlock(site.Contact),
			),
			partials.SiteFooter(site, props.Year),
			partials.FloatingCTA(site.FloatingCTA),
		)
	})
}

func heroBlock(hero models.Hero) g.Node {
	return Section(
		ID(hero.ID),
		Class("hero"),
		Div(
			Class("container"),
			components.Reveal(hero.ID, components.HeroReveal,
				components.Pill(hero.Pill),
				H1(g.Text(hero.Heading)),
				Div(Class("hero-lead"), components.Markdown(hero.Lead)),
				Div(
					Class("hero-actions"),
					A(Href(hero.Primary.Href()), Class("btn btn-primary"), g.Text(hero.Primary.Label)),
					A(Href(hero.Secondary.Href()), Class("btn btn-secondary"), g.Text(hero.Secondary.Label)),
				),
				Ul(
					Class("highlights"),
					g.Map(hero.Highlights, func(h string) g.Node {
						return Li(Class("highlight"), g.Text(h))
					}),
				),
			),
		),
	)
}

func sectionHeading(s models.Section) g.Node {
	return components.Reveal(s.ID+"-heading", components.HeadingReveal,
		Div(
			Class("section-heading"),
			H2(g.Text(s.Title)),
			g.If(s.Subtitle != "", P(g.Text(s.Subtitle))),
		),
	)
}

func servicesBlock(s models.ServicesSection) g.Node {
	return Section(
		ID(s.ID),
		Class("section"),
		Div(
			Class("container"),
			sectionHeading(s.Section),
			Div(
				Class("grid grid-3"),
				g.Group(indexed(s.Cards, func(i int, card models.ContentBlock) g.Node {
					return components.Reveal(cardKey(s.ID, i), components.CardReveal, serviceCard(card))
				})),
			),
		),
	)
}

func serviceCard(card models.ContentBlock) g.Node {
	return Article(
		Class("card"),
		g.If(card.HasBadge(), Span(Class("card-badge"), g.Text(card.Badge))),
		H3(g.Text(card.Title)),
		P(Class("card-description"), g.Text(card.Description)),
		Ul(
			Class("card-points"),
			g.Map(card.Points, func(p string) g.Node {
				return Li(components.CheckIcon(), Span(g.Text(p)))
			}),
		),
	)
}

func casesBlock(s models.CasesSection) g.Node {
	return Section(
		ID(s.ID),
		Class("section section-alt"),
		Div(
			Class("container"),
			sectionHeading(s.Section),
			Div(
				Class("grid grid-3"),
				g.Group(indexed(s.Cases, func(i int, cs models.CaseStudy) g.Node {
					return components.Reveal(cardKey(s.ID, i), components.CardReveal, caseCard(cs))
				})),
			),
		),
	)
}

func caseCard(cs models.CaseStudy) g.Node {
	return Article(
		Class("card"),
		Div(
			Class("card-head"),
			Span(Class("mark"), g.Attr("aria-hidden", "true"), g.Text(cs.Mark)),
			Div(
				H3(Class("card-name"), g.Text(cs.Name)),
				Div(Class("card-result"), g.Text(cs.Result)),
			),
		),
		P(Class("card-text"), g.Text(cs.Details)),
	)
}

func processBlock(s models.ProcessSection) g.Node {
	return Section(
		ID(s.ID),
		Class("section"),
		Div(
			Class("container"),
			sectionHeading(s.Section),
			Ol(
				Class("grid grid-4 process-steps"),
				g.Group(indexed(s.Steps, func(i int, step models.ProcessStep) g.Node {
					return Li(components.Reveal(cardKey(s.ID, i), components.CardReveal, stepCard(step)))
				})),
			),
		),
	)
}

func stepCard(step models.ProcessStep) g.Node {
	return Div(
		Class("card"),
		Span(Class("step-number"), g.Text(step.Number)),
		H3(g.Text(step.Title)),
		P(Class("card-text"), g.Text(step.Text)),
	)
}

func stackBlock(s models.StackSection) g.Node {
	return Section(
		ID(s.ID),
		Class("section section-alt"),
		Div(
			Class("container"),
			sectionHeading(s.Section),
			components.Reveal(s.ID+"-tags", components.CardReveal,
				Ul(
					Class("grid-tags stack-tags"),
					g.Map(s.Tags, func(tag string) g.Node {
						return Li(Class("tag"), g.Text(tag))
					}),
				),
				g.If(s.Note != "", Div(Class("stack-note"), components.Markdown(s.Note))),
			),
		),
	)
}

func contactBlock(s models.ContactSection) g.Node {
	return Section(
		ID(s.ID),
		Class("section contact"),
		Div(
			Class("container-narrow"),
			components.Reveal(s.ID, components.HeadingReveal,
				H2(g.Text(s.Title)),
				P(Class("contact-lead"), g.Text(s.Subtitle)),
				Div(
					Class("contact-actions"),
					externalLink(s.Email, "btn btn-primary"),
					externalLink(s.Schedule, "btn btn-secondary"),
				),
				g.If(s.Note != "", Div(Class("contact-note"), components.Markdown(s.Note))),
			),
		),
	)
}

func externalLink(l models.ExternalLink, class string) g.Node {
	return A(
		Href(l.URL),
		Class(class),
		g.If(l.NewTab, g.Group([]g.Node{Target("_blank"), Rel("noreferrer")})),
		g.Text(l.Label),
	)
}

func cardKey(section string, i int) string {
	return fmt.Sprintf("%s-card-%d", section, i+1)
}

func indexed[T any](items []T, fn func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(i, item))
	}
	return nodes
}
