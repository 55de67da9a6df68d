package models

// NavLink is an in-page anchor link. Target is the id of a section on the page.
type NavLink struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Href returns the fragment URL of the link target
func (n NavLink) Href() string {
	return "#" + n.Target
}

// ExternalLink points outside the page (mailto:, scheduling service, ...)
type ExternalLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	// NewTab opens the link in a new browsing context with rel="noreferrer"
	NewTab bool `yaml:"new_tab"`
}

// Section is the heading data shared by every titled section
type Section struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// ContentBlock is a service card: badge, title, description and bullet points
type ContentBlock struct {
	Badge       string   `yaml:"badge"` // optional
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Points      []string `yaml:"points"`
}

// HasBadge reports whether the block carries a badge label
func (b ContentBlock) HasBadge() bool {
	return b.Badge != ""
}

// CaseStudy is a case card. Mark is the one-letter logo placeholder.
type CaseStudy struct {
	Mark    string `yaml:"mark"`
	Name    string `yaml:"name"`
	Result  string `yaml:"result"`
	Details string `yaml:"details"`
}

// ProcessStep is one numbered step of the delivery process
type ProcessStep struct {
	Number string `yaml:"number"`
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
}

// Brand identifies the studio in the nav bar and footer
type Brand struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Logo     string `yaml:"logo"`
	LogoAlt  string `yaml:"logo_alt"`
	Email    string `yaml:"email"`
	Homepage string `yaml:"homepage"` // id of the top section
}

// Hero is the top section of the page
type Hero struct {
	ID         string   `yaml:"id"`
	Pill       string   `yaml:"pill"`
	Heading    string   `yaml:"heading"`
	Lead       string   `yaml:"lead"` // markdown
	Primary    NavLink  `yaml:"primary"`
	Secondary  NavLink  `yaml:"secondary"`
	Highlights []string `yaml:"highlights"`
}

// ServicesSection lists the service cards
type ServicesSection struct {
	Section `yaml:",inline"`
	Cards   []ContentBlock `yaml:"cards"`
}

// CasesSection lists the case study cards
type CasesSection struct {
	Section `yaml:",inline"`
	Cases   []CaseStudy `yaml:"cases"`
}

// ProcessSection lists the process steps
type ProcessSection struct {
	Section `yaml:",inline"`
	Steps   []ProcessStep `yaml:"steps"`
}

// StackSection lists technology tags
type StackSection struct {
	Section `yaml:",inline"`
	Tags    []string `yaml:"tags"`
	Note    string   `yaml:"note"` // markdown
}

// ContactSection is the call to action block
type ContactSection struct {
	Section  `yaml:",inline"`
	Email    ExternalLink `yaml:"email"`
	Schedule ExternalLink `yaml:"schedule"`
	Note     string       `yaml:"note"` // markdown
}

// Footer holds the footer links and copyright holder
type Footer struct {
	Holder string    `yaml:"holder"`
	Links  []NavLink `yaml:"links"`
}

// Site is the whole page content. It is loaded once and never mutated.
type Site struct {
	Brand       Brand           `yaml:"brand"`
	SEO         SEO             `yaml:"seo"`
	Nav         []NavLink       `yaml:"nav"`
	NavCTA      NavLink         `yaml:"nav_cta"`
	Hero        Hero            `yaml:"hero"`
	Services    ServicesSection `yaml:"services"`
	Cases       CasesSection    `yaml:"cases"`
	Process     ProcessSection  `yaml:"process"`
	Stack       StackSection    `yaml:"stack"`
	Contact     ContactSection  `yaml:"contact"`
	Footer      Footer          `yaml:"footer"`
	FloatingCTA NavLink         `yaml:"floating_cta"`
}

// SectionIDs returns the section ids in document order
func (s *Site) SectionIDs() []string {
	return []string{
		s.Hero.ID,
		s.Services.ID,
		s.Cases.ID,
		s.Process.ID,
		s.Stack.ID,
		s.Contact.ID,
	}
}

// Links returns every in-page link on the page, in document order
func (s *Site) Links() []NavLink {
	links := make([]NavLink, 0, len(s.Nav)+len(s.Footer.Links)+5)
	links = append(links, NavLink{Label: s.Brand.Name, Target: s.Brand.Homepage})
	links = append(links, s.Nav...)
	links = append(links, s.NavCTA, s.Hero.Primary, s.Hero.Secondary)
	links = append(links, s.Footer.Links...)
	links = append(links, s.FloatingCTA)
	return links
}
