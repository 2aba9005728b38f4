package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestApplyBranding(t *testing.T) {
	cfg := DefaultConfig()
	original := cfg.Clone()

	cfg.ApplyBranding(BrandingPatch{Motto: strPtr("Learn by Doing")})

	// only the patched field moves, siblings stay put
	assert.Equal(t, "Learn by Doing", cfg.Branding.Motto)
	assert.Equal(t, original.Branding.SchoolName, cfg.Branding.SchoolName)
	assert.Equal(t, original.Branding.PrimaryColor, cfg.Branding.PrimaryColor)
	assert.Equal(t, original.Branding.FontStyle, cfg.Branding.FontStyle)

	// other facets are never touched
	assert.Equal(t, original.Homepage, cfg.Homepage)
	assert.Equal(t, original.Theme, cfg.Theme)
	assert.Equal(t, original.Contact, cfg.Contact)
}

func TestApplyBrandingClearsField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyBranding(BrandingPatch{Logo: strPtr("")})
	assert.Empty(t, cfg.Branding.Logo)
}

func TestApplyHomepageReplacesNestedWholesale(t *testing.T) {
	cfg := DefaultConfig()
	originalAbout := cfg.Homepage.About

	cfg.ApplyHomepage(HomepagePatch{Hero: &Hero{Title: "Enroll Today"}})

	// hero replaced as a unit, its untouched fields reset to zero
	assert.Equal(t, "Enroll Today", cfg.Homepage.Hero.Title)
	assert.Empty(t, cfg.Homepage.Hero.Subtitle)
	assert.Empty(t, cfg.Homepage.Hero.CTAText)

	// sibling sub-objects survive
	assert.Equal(t, originalAbout, cfg.Homepage.About)
}

func TestApplyHomepageListsDoNotAlias(t *testing.T) {
	cfg := DefaultConfig()
	incoming := []AcademicProgram{{ID: "1", Title: "Sciences"}}
	cfg.ApplyHomepage(HomepagePatch{Academics: incoming})

	incoming[0].Title = "mutated"
	assert.Equal(t, "Sciences", cfg.Homepage.Academics[0].Title)
}

func TestApplyVisibility(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyVisibility(VisibilityPatch{Hero: boolPtr(false), Gallery: boolPtr(false)})

	assert.False(t, cfg.Visibility.Hero)
	assert.False(t, cfg.Visibility.Gallery)
	assert.True(t, cfg.Visibility.About)
	assert.True(t, cfg.Visibility.Contact)
}

func TestApplyTheme(t *testing.T) {
	cfg := DefaultConfig()
	mode := ThemeDark
	cfg.ApplyTheme(ThemePatch{Mode: &mode})
	assert.Equal(t, ThemeDark, cfg.Theme.Mode)

	cfg.ApplyTheme(ThemePatch{})
	assert.Equal(t, ThemeDark, cfg.Theme.Mode)
}

func TestApplyContact(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contact.Phone = "+254 700 000000"

	cfg.ApplyContact(ContactPatch{
		Email:   strPtr("admissions@hilltop.sc.ke"),
		Socials: &Socials{Facebook: "https://facebook.com/hilltop"},
	})

	assert.Equal(t, "admissions@hilltop.sc.ke", cfg.Contact.Email)
	assert.Equal(t, "+254 700 000000", cfg.Contact.Phone)
	// socials replaced as a unit
	assert.Equal(t, "https://facebook.com/hilltop", cfg.Contact.Socials.Facebook)
	assert.Empty(t, cfg.Contact.Socials.Instagram)
}

func TestApplyFooter(t *testing.T) {
	cfg := DefaultConfig()
	original := cfg.Footer.Copyright

	cfg.ApplyFooter(FooterPatch{Text: strPtr("A school for everyone.")})

	assert.Equal(t, "A school for everyone.", cfg.Footer.Text)
	assert.Equal(t, original, cfg.Footer.Copyright)
}

func TestAcademicProgramLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	defer mockNewID("prog-1")()

	added := cfg.AddAcademicProgram()
	assert.Equal(t, "prog-1", added.ID)
	assert.Equal(t, "New Program", added.Title)
	assert.Equal(t, "Program description", added.Description)
	assert.Len(t, cfg.Homepage.Academics, 1)

	cfg.UpdateAcademicProgram("prog-1", AcademicProgramPatch{Title: strPtr("Pure Mathematics")})
	assert.Equal(t, "Pure Mathematics", cfg.Homepage.Academics[0].Title)
	assert.Equal(t, "Program description", cfg.Homepage.Academics[0].Description)

	// unknown ids are no-ops on both update and remove
	cfg.UpdateAcademicProgram("nope", AcademicProgramPatch{Title: strPtr("x")})
	assert.Equal(t, "Pure Mathematics", cfg.Homepage.Academics[0].Title)
	cfg.RemoveAcademicProgram("nope")
	assert.Len(t, cfg.Homepage.Academics, 1)

	cfg.RemoveAcademicProgram("prog-1")
	assert.Empty(t, cfg.Homepage.Academics)
}

func TestRemoveAcademicProgramPreservesOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Homepage.Academics = []AcademicProgram{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	cfg.RemoveAcademicProgram("b")

	assert.Len(t, cfg.Homepage.Academics, 2)
	assert.Equal(t, "a", cfg.Homepage.Academics[0].ID)
	assert.Equal(t, "c", cfg.Homepage.Academics[1].ID)
}

func TestNavLinkLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	defer mockNewID("link-9")()

	added := cfg.AddNavLink()
	assert.Equal(t, "link-9", added.ID)
	assert.Equal(t, "New Link", added.Label)
	assert.Equal(t, "#", added.Href)
	assert.Len(t, cfg.Navigation.Links, 5)

	cfg.UpdateNavLink("link-9", NavLinkPatch{Label: strPtr("Admissions"), Href: strPtr("#admissions")})
	last := cfg.Navigation.Links[len(cfg.Navigation.Links)-1]
	assert.Equal(t, "Admissions", last.Label)
	assert.Equal(t, "#admissions", last.Href)

	cfg.RemoveNavLink("link-9")
	assert.Len(t, cfg.Navigation.Links, 4)

	cfg.RemoveNavLink("link-9") // already gone
	assert.Len(t, cfg.Navigation.Links, 4)
}

func mockNewID(id string) func() {
	orig := newID
	newID = func() string { return id }
	return func() { newID = orig }
}
