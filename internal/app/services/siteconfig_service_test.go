package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
)

type fakeSiteConfigStore struct {
	cfg *models.SiteConfig
}

func (f *fakeSiteConfigStore) Get(_ context.Context) (*models.SiteConfig, error) {
	if f.cfg == nil {
		return &models.SiteConfig{ID: models.SiteConfigID}, nil
	}
	copied := *f.cfg
	return &copied, nil
}

func (f *fakeSiteConfigStore) Upsert(_ context.Context, cfg *models.SiteConfig) error {
	copied := *cfg
	f.cfg = &copied
	return nil
}

func TestSiteConfigGetReturnsZeroValueWhenNeverWritten(t *testing.T) {
	svc := NewSiteConfigService(&fakeSiteConfigStore{}, &stubStorage{}, NewAuditRecorder(&fakeAuditStore{}))

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(models.SiteConfigID), cfg.ID)
	assert.Nil(t, cfg.LogoURL)
	assert.Empty(t, cfg.ContactEmail)
}

func TestSiteConfigUpdateStagesLogoAndUpserts(t *testing.T) {
	store := &fakeSiteConfigStore{}
	audit := &fakeAuditStore{}
	svc := NewSiteConfigService(store, &stubStorage{}, NewAuditRecorder(audit))

	logo := "data:image/png;base64,aGVsbG8="
	cfg, err := svc.Update(context.Background(), "admin", &dto.UpdateSiteConfigRequest{
		LogoURL:        &logo,
		ContactAddress: "House 12, Road 5, Dhaka",
		ContactEmail:   "info@bimt.edu",
		ContactPhone:   "+880123456789",
	})
	require.NoError(t, err)

	require.NotNil(t, cfg.LogoURL)
	assert.True(t, strings.HasPrefix(*cfg.LogoURL, "http://files/assets/"))
	assert.Equal(t, "info@bimt.edu", cfg.ContactEmail)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "site_config.update", audit.entries[0].Action)
}

func TestSiteConfigUpdateKeepsDurableLogoReference(t *testing.T) {
	store := &fakeSiteConfigStore{}
	svc := NewSiteConfigService(store, &stubStorage{}, NewAuditRecorder(&fakeAuditStore{}))

	logo := "http://files/assets/existing-logo.png"
	cfg, err := svc.Update(context.Background(), "admin", &dto.UpdateSiteConfigRequest{LogoURL: &logo})
	require.NoError(t, err)

	require.NotNil(t, cfg.LogoURL)
	assert.Equal(t, logo, *cfg.LogoURL)
}
