package site

import (
	"github.com/google/uuid"
)

// SchemaVersion is the current version of the stored configuration document.
// Bump it whenever a field is added so readers can migrate older documents.
const SchemaVersion = 1

// ThemeMode selects one of the fixed style bundles. It is a closed set;
// the renderer falls back to the default bundle for anything else.
type ThemeMode string

const (
	ThemeClassic  ThemeMode = "classic"
	ThemeMinimal  ThemeMode = "minimal"
	ThemeModern   ThemeMode = "modern"
	ThemeDark     ThemeMode = "dark"
	ThemeGradient ThemeMode = "gradient"
)

var ThemeModes = []ThemeMode{ThemeClassic, ThemeMinimal, ThemeModern, ThemeDark, ThemeGradient}

// FontStyles is the fixed list of fonts a school may pick from.
var FontStyles = []string{"Inter", "Roboto", "Outfit", "Playfair Display"}

// Render-time color fallbacks. An empty/absent color is substituted on read,
// never baked into the stored document.
const (
	DefaultPrimaryColor   = "#000000"
	DefaultSecondaryColor = "#ffffff"
	DefaultAccentColor    = "#3b82f6"
)

// newID generates collection-entry IDs. Mockable in tests.
var newID = uuid.NewString

type (
	Branding struct {
		SchoolName     string `json:"schoolName"`
		Motto          string `json:"motto"`
		Logo           string `json:"logo"`    // embeddable image reference, optional
		Favicon        string `json:"favicon"` // embeddable image reference, optional
		PrimaryColor   string `json:"primaryColor"`
		SecondaryColor string `json:"secondaryColor"`
		AccentColor    string `json:"accentColor"`
		FontStyle      string `json:"fontStyle"`
	}

	Hero struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		CTAText  string `json:"ctaText"`
		CTALink  string `json:"ctaLink"`
		BgImage  string `json:"bgImage"`
	}

	About struct {
		Description string `json:"description"`
		Vision      string `json:"vision"`
		Mission     string `json:"mission"`
		Image       string `json:"image"`
	}

	AcademicProgram struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}

	Testimonial struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Role    string `json:"role"`
		Content string `json:"content"`
		Image   string `json:"image"`
	}

	Homepage struct {
		Hero         Hero              `json:"hero"`
		About        About             `json:"about"`
		Academics    []AcademicProgram `json:"academics"`
		Gallery      []string          `json:"gallery"`
		Testimonials []Testimonial     `json:"testimonials"`
	}

	// Visibility controls inclusion of homepage sections in rendering,
	// independent of whether the section has content. Gallery and
	// testimonials are reserved: stored and editable, not yet rendered.
	Visibility struct {
		Hero         bool `json:"hero"`
		About        bool `json:"about"`
		Academics    bool `json:"academics"`
		Gallery      bool `json:"gallery"`
		Testimonials bool `json:"testimonials"`
		Contact      bool `json:"contact"`
	}

	Theme struct {
		Mode ThemeMode `json:"mode"`
	}

	Socials struct {
		Facebook  string `json:"facebook"`
		Instagram string `json:"instagram"`
		Twitter   string `json:"twitter"`
		Whatsapp  string `json:"whatsapp"`
	}

	Contact struct {
		Email   string  `json:"email"`
		Phone   string  `json:"phone"`
		Address string  `json:"address"`
		Socials Socials `json:"socials"`
	}

	NavLink struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Href  string `json:"href"`
	}

	Navigation struct {
		Links []NavLink `json:"links"`
	}

	Footer struct {
		Text      string `json:"text"`
		Copyright string `json:"copyright"`
	}

	// WebsiteConfig is the root aggregate: one document per tenant,
	// keyed by subdomain in storage.
	WebsiteConfig struct {
		SchemaVersion int        `json:"schemaVersion"`
		Branding      Branding   `json:"branding"`
		Homepage      Homepage   `json:"homepage"`
		Visibility    Visibility `json:"visibility"`
		Theme         Theme      `json:"theme"`
		Contact       Contact    `json:"contact"`
		Navigation    Navigation `json:"navigation"`
		Footer        Footer     `json:"footer"`
	}
)

// DefaultConfig synthesizes a fully-populated configuration for a tenant
// with no stored document. Every field has a concrete value so consumers
// never have to nil-check nested facets.
func DefaultConfig() WebsiteConfig {
	return WebsiteConfig{
		SchemaVersion: SchemaVersion,
		Branding: Branding{
			SchoolName:     "",
			Motto:          "Knowledge is Light",
			PrimaryColor:   DefaultPrimaryColor,
			SecondaryColor: DefaultSecondaryColor,
			AccentColor:    DefaultAccentColor,
			FontStyle:      "Inter",
		},
		Homepage: Homepage{
			Hero: Hero{
				Title:    "Welcome to Our School",
				Subtitle: "Nurturing young minds for a brighter future.",
				CTAText:  "Apply Now",
				CTALink:  "#admissions",
			},
			About: About{
				Description: "Our school is committed to academic excellence and character development.",
				Vision:      "To be a leading centre of learning in our community.",
				Mission:     "To provide quality education accessible to every child.",
			},
			Academics:    []AcademicProgram{},
			Gallery:      []string{},
			Testimonials: []Testimonial{},
		},
		Visibility: Visibility{
			Hero:         true,
			About:        true,
			Academics:    true,
			Gallery:      true,
			Testimonials: true,
			Contact:      true,
		},
		Theme: Theme{Mode: ThemeClassic},
		Contact: Contact{
			Email:   "",
			Phone:   "",
			Address: "",
			Socials: Socials{},
		},
		Navigation: Navigation{
			Links: []NavLink{
				{ID: newID(), Label: "Home", Href: "#"},
				{ID: newID(), Label: "About", Href: "#about"},
				{ID: newID(), Label: "Academics", Href: "#academics"},
				{ID: newID(), Label: "Contact", Href: "#contact"},
			},
		},
		Footer: Footer{
			Text:      "Quality education for a brighter tomorrow.",
			Copyright: "All rights reserved.",
		},
	}
}

// Clone returns a deep copy; list-valued fields are copied so mutations on
// the copy never leak into the original.
func (c WebsiteConfig) Clone() WebsiteConfig {
	clone := c
	if c.Homepage.Academics != nil {
		clone.Homepage.Academics = append([]AcademicProgram(nil), c.Homepage.Academics...)
	}
	if c.Homepage.Gallery != nil {
		clone.Homepage.Gallery = append([]string(nil), c.Homepage.Gallery...)
	}
	if c.Homepage.Testimonials != nil {
		clone.Homepage.Testimonials = append([]Testimonial(nil), c.Homepage.Testimonials...)
	}
	if c.Navigation.Links != nil {
		clone.Navigation.Links = append([]NavLink(nil), c.Navigation.Links...)
	}
	return clone
}

// normalize structurally repairs a document read from (or headed to) storage:
// nil collections become empty and the schema version is stamped. String
// defaulting (colors, theme) intentionally stays at render time so an
// explicit empty value remains observable in the stored document.
func (c *WebsiteConfig) normalize() {
	if c.SchemaVersion == 0 {
		c.SchemaVersion = SchemaVersion
	}
	if c.Homepage.Academics == nil {
		c.Homepage.Academics = []AcademicProgram{}
	}
	if c.Homepage.Gallery == nil {
		c.Homepage.Gallery = []string{}
	}
	if c.Homepage.Testimonials == nil {
		c.Homepage.Testimonials = []Testimonial{}
	}
	if c.Navigation.Links == nil {
		c.Navigation.Links = []NavLink{}
	}
}

// ValidThemeMode reports whether mode is one of the known theme modes.
func ValidThemeMode(mode ThemeMode) bool {
	for _, m := range ThemeModes {
		if m == mode {
			return true
		}
	}
	return false
}

// ValidFontStyle reports whether font is one of the supported fonts.
func ValidFontStyle(font string) bool {
	for _, f := range FontStyles {
		if f == font {
			return true
		}
	}
	return false
}
