package services

import (
	"context"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/filestorage"
)

// siteConfigStore is the singleton configuration persistence surface
type siteConfigStore interface {
	Get(ctx context.Context) (*models.SiteConfig, error)
	Upsert(ctx context.Context, cfg *models.SiteConfig) error
}

// SiteConfigService defines the interface for site configuration
type SiteConfigService interface {
	Get(ctx context.Context) (*models.SiteConfig, error)
	Update(ctx context.Context, actor string, req *dto.UpdateSiteConfigRequest) (*models.SiteConfig, error)
}

// siteConfigServiceImpl implements SiteConfigService
type siteConfigServiceImpl struct {
	store   siteConfigStore
	storage filestorage.Storage
	audit   *AuditRecorder
}

// NewSiteConfigService creates a new SiteConfigService
func NewSiteConfigService(store siteConfigStore, storage filestorage.Storage, audit *AuditRecorder) SiteConfigService {
	return &siteConfigServiceImpl{
		store:   store,
		storage: storage,
		audit:   audit,
	}
}

// Get returns the site configuration, zero-valued when never written
func (s *siteConfigServiceImpl) Get(ctx context.Context) (*models.SiteConfig, error) {
	return s.store.Get(ctx)
}

// Update upserts the singleton configuration row. A data URI logo payload is
// stored under assets/ before the write.
func (s *siteConfigServiceImpl) Update(ctx context.Context, actor string, req *dto.UpdateSiteConfigRequest) (*models.SiteConfig, error) {
	staging := filestorage.NewStaging(s.storage)

	cfg := &models.SiteConfig{
		ID:             models.SiteConfigID,
		ContactAddress: req.ContactAddress,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	}

	if req.LogoURL != nil {
		logoURL, err := staging.Resolve(*req.LogoURL, filestorage.FolderAssets)
		if err != nil {
			staging.Discard()
			return nil, err
		}
		if logoURL != "" {
			cfg.LogoURL = &logoURL
		}
	}

	if err := s.store.Upsert(ctx, cfg); err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	s.audit.Record(ctx, actor, "site_config.update", "site_config", "")
	return s.store.Get(ctx)
}
