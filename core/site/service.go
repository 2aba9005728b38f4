package site

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/skulafrica/sitebuilder/core"
)

// ErrNotFound is returned by repositories when no document is stored for a tenant.
var ErrNotFound = errors.New("website configuration not found")

type (
	// Repository persists one configuration document per tenant, keyed by
	// subdomain. Writes replace the whole document; last writer wins.
	Repository interface {
		GetConfig(ctx context.Context, subdomain string) (WebsiteConfig, error)
		SaveConfig(ctx context.Context, subdomain string, cfg WebsiteConfig) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load returns the stored configuration for the tenant, or a fully-populated
// default document when none exists. Loaded documents are structurally
// normalized so consumers never nil-check nested facets.
func (svc *Service) Load(ctx context.Context, subdomain string) (WebsiteConfig, error) {
	cfg, err := svc.repo.GetConfig(ctx, core.CleanString(subdomain, true /* lower */))
	if err != nil {
		if pkgerrors.Cause(err) == ErrNotFound {
			return DefaultConfig(), nil
		}
		return WebsiteConfig{}, pkgerrors.Wrap(err, "getting website config")
	}
	cfg.normalize()
	return cfg, nil
}

// Save overwrites the tenant's stored document.
func (svc *Service) Save(ctx context.Context, subdomain string, cfg WebsiteConfig) error {
	cfg.normalize()
	err := svc.repo.SaveConfig(ctx, core.CleanString(subdomain, true /* lower */), cfg)
	return pkgerrors.Wrap(err, "saving website config")
}
