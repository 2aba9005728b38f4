package site

import (
	"github.com/go-playground/validator/v10"

	"github.com/skulafrica/sitebuilder/core"
)

// Facet patches carry partial updates: nil fields are left untouched,
// non-nil fields replace the current value wholesale. The merge is one
// level deep; nested objects (hero, about, socials) and lists are
// replaced as a unit, so callers send the complete sub-object.

type BrandingPatch struct {
	SchoolName     *string `json:"schoolName" validate:"omitempty,max=150"`
	Motto          *string `json:"motto" validate:"omitempty,max=300"`
	Logo           *string `json:"logo"`
	Favicon        *string `json:"favicon"`
	PrimaryColor   *string `json:"primaryColor" validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondaryColor" validate:"omitempty,hexcolor"`
	AccentColor    *string `json:"accentColor" validate:"omitempty,hexcolor"`
	FontStyle      *string `json:"fontStyle" validate:"omitempty,fontstyle"`
}

func (p *BrandingPatch) Validate(validate *validator.Validate) error {
	cleanStringPtr(p.SchoolName)
	cleanStringPtr(p.Motto)
	cleanStringPtr(p.PrimaryColor, true /* lower */)
	cleanStringPtr(p.SecondaryColor, true /* lower */)
	cleanStringPtr(p.AccentColor, true /* lower */)
	return validate.Struct(p)
}

type HomepagePatch struct {
	Hero         *Hero             `json:"hero"`
	About        *About            `json:"about"`
	Academics    []AcademicProgram `json:"academics"`
	Gallery      []string          `json:"gallery"`
	Testimonials []Testimonial     `json:"testimonials"`
}

func (p *HomepagePatch) Validate(validate *validator.Validate) error {
	return validate.Struct(p)
}

type VisibilityPatch struct {
	Hero         *bool `json:"hero"`
	About        *bool `json:"about"`
	Academics    *bool `json:"academics"`
	Gallery      *bool `json:"gallery"`
	Testimonials *bool `json:"testimonials"`
	Contact      *bool `json:"contact"`
}

func (p *VisibilityPatch) Validate(validate *validator.Validate) error {
	return validate.Struct(p)
}

type ThemePatch struct {
	Mode *ThemeMode `json:"mode" validate:"omitempty,thememode"`
}

func (p *ThemePatch) Validate(validate *validator.Validate) error {
	return validate.Struct(p)
}

type ContactPatch struct {
	Email   *string  `json:"email" validate:"omitempty,email"`
	Phone   *string  `json:"phone"`
	Address *string  `json:"address"`
	Socials *Socials `json:"socials"`
}

func (p *ContactPatch) Validate(validate *validator.Validate) error {
	cleanStringPtr(p.Email, true /* lower */)
	cleanStringPtr(p.Phone)
	cleanStringPtr(p.Address)
	return validate.Struct(p)
}

type NavigationPatch struct {
	Links []NavLink `json:"links"`
}

func (p *NavigationPatch) Validate(validate *validator.Validate) error {
	return validate.Struct(p)
}

type FooterPatch struct {
	Text      *string `json:"text"`
	Copyright *string `json:"copyright"`
}

func (p *FooterPatch) Validate(validate *validator.Validate) error {
	cleanStringPtr(p.Text)
	cleanStringPtr(p.Copyright)
	return validate.Struct(p)
}

type AcademicProgramPatch struct {
	Title       *string `json:"title" validate:"omitempty,max=150"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (p *AcademicProgramPatch) Validate(validate *validator.Validate) error {
	cleanStringPtr(p.Title)
	return validate.Struct(p)
}

type NavLinkPatch struct {
	Label *string `json:"label" validate:"omitempty,max=80"`
	Href  *string `json:"href"`
}

func (p *NavLinkPatch) Validate(validate *validator.Validate) error {
	cleanStringPtr(p.Label)
	cleanStringPtr(p.Href)
	return validate.Struct(p)
}

// Facet merges. Each touches exactly one facet of the aggregate and
// preserves sibling fields of that facet.

func (c *WebsiteConfig) ApplyBranding(p BrandingPatch) {
	if p.SchoolName != nil {
		c.Branding.SchoolName = *p.SchoolName
	}
	if p.Motto != nil {
		c.Branding.Motto = *p.Motto
	}
	if p.Logo != nil {
		c.Branding.Logo = *p.Logo
	}
	if p.Favicon != nil {
		c.Branding.Favicon = *p.Favicon
	}
	if p.PrimaryColor != nil {
		c.Branding.PrimaryColor = *p.PrimaryColor
	}
	if p.SecondaryColor != nil {
		c.Branding.SecondaryColor = *p.SecondaryColor
	}
	if p.AccentColor != nil {
		c.Branding.AccentColor = *p.AccentColor
	}
	if p.FontStyle != nil {
		c.Branding.FontStyle = *p.FontStyle
	}
}

func (c *WebsiteConfig) ApplyHomepage(p HomepagePatch) {
	if p.Hero != nil {
		c.Homepage.Hero = *p.Hero
	}
	if p.About != nil {
		c.Homepage.About = *p.About
	}
	if p.Academics != nil {
		c.Homepage.Academics = append([]AcademicProgram{}, p.Academics...)
	}
	if p.Gallery != nil {
		c.Homepage.Gallery = append([]string{}, p.Gallery...)
	}
	if p.Testimonials != nil {
		c.Homepage.Testimonials = append([]Testimonial{}, p.Testimonials...)
	}
}

func (c *WebsiteConfig) ApplyVisibility(p VisibilityPatch) {
	if p.Hero != nil {
		c.Visibility.Hero = *p.Hero
	}
	if p.About != nil {
		c.Visibility.About = *p.About
	}
	if p.Academics != nil {
		c.Visibility.Academics = *p.Academics
	}
	if p.Gallery != nil {
		c.Visibility.Gallery = *p.Gallery
	}
	if p.Testimonials != nil {
		c.Visibility.Testimonials = *p.Testimonials
	}
	if p.Contact != nil {
		c.Visibility.Contact = *p.Contact
	}
}

func (c *WebsiteConfig) ApplyTheme(p ThemePatch) {
	if p.Mode != nil {
		c.Theme.Mode = *p.Mode
	}
}

func (c *WebsiteConfig) ApplyContact(p ContactPatch) {
	if p.Email != nil {
		c.Contact.Email = *p.Email
	}
	if p.Phone != nil {
		c.Contact.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Contact.Address = *p.Address
	}
	if p.Socials != nil {
		c.Contact.Socials = *p.Socials
	}
}

func (c *WebsiteConfig) ApplyNavigation(p NavigationPatch) {
	if p.Links != nil {
		c.Navigation.Links = append([]NavLink{}, p.Links...)
	}
}

func (c *WebsiteConfig) ApplyFooter(p FooterPatch) {
	if p.Text != nil {
		c.Footer.Text = *p.Text
	}
	if p.Copyright != nil {
		c.Footer.Copyright = *p.Copyright
	}
}

// List operations. IDs are assigned once at creation, unique within the
// owning collection. Update/remove with an unknown id is a no-op.

func (c *WebsiteConfig) AddAcademicProgram() AcademicProgram {
	prog := AcademicProgram{
		ID:          newID(),
		Title:       "New Program",
		Description: "Program description",
	}
	c.Homepage.Academics = append(c.Homepage.Academics, prog)
	return prog
}

func (c *WebsiteConfig) UpdateAcademicProgram(id string, p AcademicProgramPatch) {
	for i, prog := range c.Homepage.Academics {
		if prog.ID != id {
			continue
		}
		if p.Title != nil {
			prog.Title = *p.Title
		}
		if p.Description != nil {
			prog.Description = *p.Description
		}
		if p.Image != nil {
			prog.Image = *p.Image
		}
		c.Homepage.Academics[i] = prog
		return
	}
}

func (c *WebsiteConfig) RemoveAcademicProgram(id string) {
	kept := c.Homepage.Academics[:0]
	for _, prog := range c.Homepage.Academics {
		if prog.ID != id {
			kept = append(kept, prog)
		}
	}
	c.Homepage.Academics = kept
}

func (c *WebsiteConfig) AddNavLink() NavLink {
	link := NavLink{
		ID:    newID(),
		Label: "New Link",
		Href:  "#",
	}
	c.Navigation.Links = append(c.Navigation.Links, link)
	return link
}

func (c *WebsiteConfig) UpdateNavLink(id string, p NavLinkPatch) {
	for i, link := range c.Navigation.Links {
		if link.ID != id {
			continue
		}
		if p.Label != nil {
			link.Label = *p.Label
		}
		if p.Href != nil {
			link.Href = *p.Href
		}
		c.Navigation.Links[i] = link
		return
	}
}

func (c *WebsiteConfig) RemoveNavLink(id string) {
	kept := c.Navigation.Links[:0]
	for _, link := range c.Navigation.Links {
		if link.ID != id {
			kept = append(kept, link)
		}
	}
	c.Navigation.Links = kept
}

func cleanStringPtr(s *string, lower ...bool) {
	if s != nil {
		*s = core.CleanString(*s, lower...)
	}
}
