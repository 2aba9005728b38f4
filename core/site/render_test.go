package site

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sectionKinds(page Page) []string {
	kinds := make([]string, 0, len(page.Sections))
	for _, sec := range page.Sections {
		kinds = append(kinds, sec.Kind)
	}
	return kinds
}

func findSection(t *testing.T, page Page, kind string) Node {
	t.Helper()
	for _, sec := range page.Sections {
		if sec.Kind == kind {
			return sec
		}
	}
	t.Fatalf("section %q not rendered", kind)
	return Node{}
}

func findChild(node Node, kind string) (Node, bool) {
	for _, child := range node.Children {
		if child.Kind == kind {
			return child, true
		}
	}
	return Node{}, false
}

func TestRenderIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Homepage.Academics = []AcademicProgram{{ID: "1", Title: "Sciences", Description: "Labs"}}

	first := Render(cfg)
	second := Render(cfg)
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestRenderSectionOrder(t *testing.T) {
	page := Render(DefaultConfig())
	assert.Equal(t, []string{"header", "hero", "about", "academics", "contact", "footer"}, sectionKinds(page))
}

func TestRenderVisibilityGating(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Visibility.Hero = false
	cfg.Visibility.Academics = false

	page := Render(cfg)

	// header and footer always render, hidden sections drop out entirely
	assert.Equal(t, []string{"header", "about", "contact", "footer"}, sectionKinds(page))
}

func TestRenderVisibleEmptySectionsGetPlaceholders(t *testing.T) {
	cfg := DefaultConfig() // no academics, no about image

	page := Render(cfg)

	academics := findSection(t, page, "academics")
	empty, ok := findChild(academics, "empty")
	assert.True(t, ok)
	assert.Equal(t, "No academic programs added yet.", empty.Text)

	about := findSection(t, page, "about")
	placeholder, ok := findChild(about, "imagePlaceholder")
	assert.True(t, ok)
	assert.Equal(t, "No Image Uploaded", placeholder.Text)
	_, ok = findChild(about, "image")
	assert.False(t, ok)

	// a visible section with no text content still renders
	cfg.Homepage.About = About{}
	findSection(t, Render(cfg), "about")
}

func TestRenderColorFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Branding.PrimaryColor = ""
	cfg.Branding.SecondaryColor = ""
	cfg.Branding.AccentColor = ""

	page := Render(cfg)

	header := findSection(t, page, "header")
	button, ok := findChild(header, "button")
	assert.True(t, ok)
	assert.Equal(t, DefaultAccentColor, button.Attrs["background"])

	contact := findSection(t, page, "contact")
	form, ok := findChild(contact, "form")
	assert.True(t, ok)
	send, ok := findChild(form, "button")
	assert.True(t, ok)
	assert.Equal(t, DefaultPrimaryColor, send.Attrs["background"])
	assert.Equal(t, DefaultSecondaryColor, send.Attrs["color"])
}

func TestRenderColorPassthrough(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Branding.AccentColor = "#ff0000"

	header := findSection(t, Render(cfg), "header")
	button, _ := findChild(header, "button")
	assert.Equal(t, "#ff0000", button.Attrs["background"])
}

func TestRenderThemeBundles(t *testing.T) {
	cases := []struct {
		mode ThemeMode
		want StyleBundle
	}{
		{ThemeClassic, StyleBundle{Background: "bg-slate-50", Text: "text-slate-900", Font: "font-serif"}},
		{ThemeMinimal, StyleBundle{Background: "bg-white", Text: "text-neutral-900", Font: "font-light"}},
		{ThemeDark, StyleBundle{Background: "bg-neutral-950", Text: "text-white"}},
		{ThemeModern, defaultStyleBundle},
		{ThemeGradient, defaultStyleBundle},
		{ThemeMode("unknown"), defaultStyleBundle},
		{ThemeMode(""), defaultStyleBundle},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		cfg.Theme.Mode = c.mode
		assert.Equal(t, c.want, Render(cfg).Style, string(c.mode))
	}
}

func TestRenderHeroScrim(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Homepage.Hero.BgImage = "data:image/jpeg;base64,xxx"

	hero := findSection(t, Render(cfg), "hero")
	bg, ok := findChild(hero, "background")
	assert.True(t, ok)
	assert.Equal(t, "bg-black/50", bg.Attrs["overlay"])
	heading, _ := findChild(hero, "heading")
	assert.Equal(t, "white", heading.Attrs["color"])

	cfg.Theme.Mode = ThemeDark
	hero = findSection(t, Render(cfg), "hero")
	bg, _ = findChild(hero, "background")
	assert.Equal(t, "bg-black/70", bg.Attrs["overlay"])
}

func TestRenderHeroWithoutImageHasNoScrim(t *testing.T) {
	hero := findSection(t, Render(DefaultConfig()), "hero")
	_, ok := findChild(hero, "background")
	assert.False(t, ok)
	heading, _ := findChild(hero, "heading")
	assert.Equal(t, "inherit", heading.Attrs["color"])
}

func TestRenderHeaderFallsBackToSchoolNamePlaceholder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Branding.SchoolName = ""
	cfg.Branding.Logo = ""

	header := findSection(t, Render(cfg), "header")
	title, _ := findChild(header, "title")
	assert.Equal(t, "School Name", title.Text)
	_, ok := findChild(header, "logoPlaceholder")
	assert.True(t, ok)
	_, ok = findChild(header, "logo")
	assert.False(t, ok)
}

func TestRenderContactSocials(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contact.Socials = Socials{
		Facebook: "https://facebook.com/hilltop",
		Whatsapp: "+254700000000", // stored but never rendered
	}

	contact := findSection(t, Render(cfg), "contact")
	var networks []string
	for _, child := range contact.Children {
		if child.Kind == "social" {
			networks = append(networks, child.Attrs["network"])
		}
	}
	assert.Equal(t, []string{"facebook"}, networks)
}

func TestRenderFontFamilyFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Branding.FontStyle = ""
	assert.Equal(t, "Inter", Render(cfg).FontFamily)

	cfg.Branding.FontStyle = "Playfair Display"
	assert.Equal(t, "Playfair Display", Render(cfg).FontFamily)
}
