package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/repositories"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/auth"
)

// CreateDefaultData ensures a super admin account and the site configuration
// row exist, so a fresh deployment is immediately usable.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	memberRepo := repositories.NewTeamMemberRepository(dbPool)
	siteConfigRepo := repositories.NewSiteConfigRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default super admin --- //
	_, err := memberRepo.GetByUsername(ctx, "admin")
	if errors.Is(err, apperrors.ErrTeamMemberNotFound) {
		lgr.Info().Msg("Creating default super admin account...")

		hash, hashErr := auth.HashPassword("ChangeMe123!")
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, hashErr)
		} else {
			admin := &models.TeamMember{
				Username:     "admin",
				PasswordHash: hash,
				FullName:     "Administrator",
				Title:        "Site Administrator",
				Role:         models.RoleSuperAdmin,
			}
			if _, createErr := memberRepo.Create(ctx, admin); createErr != nil &&
				!errors.Is(createErr, apperrors.ErrUsernameAlreadyExists) {
				lgr.Error().Err(createErr).Msg("Error creating default super admin")
				finalErr = errors.Join(finalErr, createErr)
			} else {
				lgr.Warn().Msg("Default super admin 'admin' created with a placeholder password, change it immediately")
			}
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default super admin")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Site configuration row --- //
	cfg, err := siteConfigRepo.Get(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error loading site config during seed")
		finalErr = errors.Join(finalErr, err)
	} else if cfg.ContactEmail == "" && cfg.ContactPhone == "" && cfg.ContactAddress == "" && cfg.LogoURL == nil {
		if upsertErr := siteConfigRepo.Upsert(ctx, cfg); upsertErr != nil {
			lgr.Error().Err(upsertErr).Msg("Error seeding site config row")
			finalErr = errors.Join(finalErr, upsertErr)
		}
	}

	return finalErr
}
