package models

// Icons holds the icon references rendered into the document head
type Icons struct {
	Icon     string `yaml:"icon"`     // <link rel="icon">
	Shortcut string `yaml:"shortcut"` // <link rel="shortcut icon">
	Apple    string `yaml:"apple"`    // <link rel="apple-touch-icon">
}

// SEO contains metadata for search engines, social sharing and installability
type SEO struct {
	Title       string `yaml:"title"`       // Page title
	Description string `yaml:"description"` // Meta description (150-160 chars recommended)
	Keywords    string `yaml:"keywords"`    // Meta keywords (comma-separated)
	Canonical   string `yaml:"canonical"`   // Canonical URL, derived from APP_URL when empty
	OGTitle     string `yaml:"og_title"`    // Open Graph title (defaults to Title if empty)
	OGDesc      string `yaml:"og_desc"`     // Open Graph description (defaults to Description if empty)
	OGImage     string `yaml:"og_image"`    // Open Graph image URL
	OGType      string `yaml:"og_type"`     // Open Graph type (website, article, etc.)
	TwitterCard string `yaml:"twitter_card"`
	NoIndex     bool   `yaml:"no_index"` // If true, adds noindex directive
	Locale      string `yaml:"locale"`   // Document language (e.g., "en")
	ThemeColor  string `yaml:"theme_color"`
	Icons       Icons  `yaml:"icons"`
	Manifest    string `yaml:"manifest"` // Web app manifest path
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithNoIndex sets the noindex directive
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}

// GetOGTitle returns OGTitle or falls back to Title
func (s *SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to Description
func (s *SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.Description
}

// GetLocale returns the document language, "en" when unset
func (s *SEO) GetLocale() string {
	if s.Locale != "" {
		return s.Locale
	}
	return "en"
}
