package site

import (
	"context"
	"errors"
	"sync"
)

// ErrNotLoaded is returned when a customization session is used before Load succeeds.
var ErrNotLoaded = errors.New("customization session not loaded")

// Customizer owns the in-memory working copy of a tenant's configuration for
// the lifetime of an editing session. All mutations go through the facet
// update methods; nothing is persisted until Save is called explicitly.
// A failed Save keeps the working copy intact so the edits can be retried.
type Customizer struct {
	svc       *Service
	subdomain string

	mu     sync.RWMutex
	loaded bool
	cfg    WebsiteConfig
}

func NewCustomizer(svc *Service, subdomain string) *Customizer {
	return &Customizer{svc: svc, subdomain: subdomain}
}

// Load pulls the tenant's document (or defaults) into the working copy.
// The loaded flag only ever flips one way; reloading mid-session would
// silently discard edits.
func (c *Customizer) Load(ctx context.Context) error {
	cfg, err := c.svc.Load(ctx, c.subdomain)
	if err != nil {
		return err
	}
	c.mu.Lock()
	if !c.loaded {
		c.cfg = cfg
		c.loaded = true
	}
	c.mu.Unlock()
	return nil
}

func (c *Customizer) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Config returns a copy of the working copy.
func (c *Customizer) Config() (WebsiteConfig, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return WebsiteConfig{}, ErrNotLoaded
	}
	return c.cfg.Clone(), nil
}

// Replace swaps the whole working copy (whole-document PUT path).
func (c *Customizer) Replace(cfg WebsiteConfig) error {
	return c.mutate(func(dst *WebsiteConfig) {
		*dst = cfg.Clone()
		dst.normalize()
	})
}

// Render produces the display tree for the current working copy.
func (c *Customizer) Render() (Page, error) {
	cfg, err := c.Config()
	if err != nil {
		return Page{}, err
	}
	return Render(cfg), nil
}

// Save persists the working copy. On failure the copy is untouched and
// remains editable and re-savable.
func (c *Customizer) Save(ctx context.Context) error {
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	return c.svc.Save(ctx, c.subdomain, cfg)
}

func (c *Customizer) UpdateBranding(p BrandingPatch) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.ApplyBranding(p) })
}

func (c *Customizer) UpdateHomepage(p HomepagePatch) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.ApplyHomepage(p) })
}

func (c *Customizer) UpdateVisibility(p VisibilityPatch) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.ApplyVisibility(p) })
}

func (c *Customizer) UpdateTheme(p ThemePatch) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.ApplyTheme(p) })
}

func (c *Customizer) UpdateContact(p ContactPatch) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.ApplyContact(p) })
}

func (c *Customizer) UpdateNavigation(p NavigationPatch) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.ApplyNavigation(p) })
}

func (c *Customizer) UpdateFooter(p FooterPatch) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.ApplyFooter(p) })
}

func (c *Customizer) AddAcademicProgram() (AcademicProgram, error) {
	var prog AcademicProgram
	err := c.mutate(func(cfg *WebsiteConfig) { prog = cfg.AddAcademicProgram() })
	return prog, err
}

func (c *Customizer) UpdateAcademicProgram(id string, p AcademicProgramPatch) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.UpdateAcademicProgram(id, p) })
}

func (c *Customizer) RemoveAcademicProgram(id string) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.RemoveAcademicProgram(id) })
}

func (c *Customizer) AddNavLink() (NavLink, error) {
	var link NavLink
	err := c.mutate(func(cfg *WebsiteConfig) { link = cfg.AddNavLink() })
	return link, err
}

func (c *Customizer) UpdateNavLink(id string, p NavLinkPatch) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.UpdateNavLink(id, p) })
}

func (c *Customizer) RemoveNavLink(id string) error {
	return c.mutate(func(cfg *WebsiteConfig) { cfg.RemoveNavLink(id) })
}

func (c *Customizer) mutate(fn func(*WebsiteConfig)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return ErrNotLoaded
	}
	fn(&c.cfg)
	return nil
}
