package main

import (
	"context"

	"github.com/skulafrica/sitebuilder/core/site"
)

// seedSite stores a fully-populated default website for the school so a
// freshly onboarded tenant has something to show before its admins log in.
func (cli *commandLine) seedSite(subdomain, name string) error {
	ctx := context.Background()

	cust := site.NewCustomizer(cli.siteSvc, subdomain)
	if err := cust.Load(ctx); err != nil {
		return err
	}
	if name != "" {
		if err := cust.UpdateBranding(site.BrandingPatch{SchoolName: &name}); err != nil {
			return err
		}
	}
	if err := cust.Save(ctx); err != nil {
		return err
	}

	logger.Printf("website seeded for %q\n", subdomain)
	return nil
}
