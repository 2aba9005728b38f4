package inmemdb

import (
	"context"

	"github.com/skulafrica/sitebuilder/core/site"
)

type siteRow struct {
	cfg site.WebsiteConfig
}

type siteRepository struct {
	db *siteTable
}

func NewSiteRepository(db *DB) site.Repository {
	return &siteRepository{db: db.site}
}

func (repo *siteRepository) GetConfig(ctx context.Context, subdomain string) (site.WebsiteConfig, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	row, ok := repo.db.table[subdomain]
	if !ok {
		return site.WebsiteConfig{}, site.ErrNotFound
	}
	return row.cfg.Clone(), nil
}

func (repo *siteRepository) SaveConfig(ctx context.Context, subdomain string, cfg site.WebsiteConfig) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[subdomain] = siteRow{cfg: cfg.Clone()}
	return nil
}
