package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/skulafrica/sitebuilder/core/site"
)

// siteRepository stores each tenant's configuration as a single JSONB
// document keyed by subdomain. The document column is the source of truth;
// no per-field columns, writes replace the document wholesale.
type siteRepository struct {
	db *sqlx.DB
}

func NewSiteRepository(db *sqlx.DB) site.Repository {
	return &siteRepository{db: db}
}

func (repo *siteRepository) GetConfig(ctx context.Context, subdomain string) (site.WebsiteConfig, error) {
	var raw []byte
	query := `SELECT document FROM website_configs WHERE subdomain = $1`
	if err := repo.db.GetContext(ctx, &raw, query, subdomain); err != nil {
		if err == sql.ErrNoRows {
			return site.WebsiteConfig{}, site.ErrNotFound
		}
		return site.WebsiteConfig{}, errors.Wrap(err, "querying website config")
	}

	var cfg site.WebsiteConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return site.WebsiteConfig{}, errors.Wrap(err, "decoding website config document")
	}
	return cfg, nil
}

func (repo *siteRepository) SaveConfig(ctx context.Context, subdomain string, cfg site.WebsiteConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encoding website config document")
	}

	query := `
INSERT INTO website_configs (subdomain, document)
VALUES ($1, $2)
ON CONFLICT (subdomain)
DO UPDATE SET document = EXCLUDED.document, updated_at = now()`
	if _, err = repo.db.ExecContext(ctx, query, subdomain, raw); err != nil {
		return errors.Wrap(err, "upserting website config")
	}
	return nil
}
