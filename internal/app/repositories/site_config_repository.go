package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// SiteConfigRepository handles the singleton site configuration row
type SiteConfigRepository struct {
	db *pgxpool.Pool
}

// NewSiteConfigRepository creates a new SiteConfigRepository
func NewSiteConfigRepository(db *pgxpool.Pool) *SiteConfigRepository {
	return &SiteConfigRepository{db: db}
}

// Get retrieves the site configuration. A missing row yields the zero-value
// configuration rather than an error so the public site always renders.
func (r *SiteConfigRepository) Get(ctx context.Context) (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	err := r.db.QueryRow(ctx,
		`SELECT id, logo_url, contact_address, contact_email, contact_phone
		 FROM site_config WHERE id = $1`, models.SiteConfigID,
	).Scan(&cfg.ID, &cfg.LogoURL, &cfg.ContactAddress, &cfg.ContactEmail, &cfg.ContactPhone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.SiteConfig{ID: models.SiteConfigID}, nil
		}
		return nil, fmt.Errorf("error querying site config: %w", err)
	}
	return &cfg, nil
}

// Upsert writes the site configuration, creating the singleton row if absent
func (r *SiteConfigRepository) Upsert(ctx context.Context, cfg *models.SiteConfig) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO site_config (id, logo_url, contact_address, contact_email, contact_phone)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET
		   logo_url = EXCLUDED.logo_url,
		   contact_address = EXCLUDED.contact_address,
		   contact_email = EXCLUDED.contact_email,
		   contact_phone = EXCLUDED.contact_phone`,
		models.SiteConfigID, cfg.LogoURL, cfg.ContactAddress, cfg.ContactEmail, cfg.ContactPhone,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error upserting site config")
		return fmt.Errorf("error upserting site config: %w", err)
	}

	logger.Info().Msg("Site config updated")
	return nil
}
