package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// CampusImageRepository handles homepage slideshow image operations
type CampusImageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCampusImageRepository creates a new CampusImageRepository
func NewCampusImageRepository(db *pgxpool.Pool) *CampusImageRepository {
	return &CampusImageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves all slideshow images, oldest first
func (r *CampusImageRepository) List(ctx context.Context) ([]models.CampusImage, error) {
	querySql, args, err := r.sb.Select("id", "url", "uploaded_at").
		From("campus_images").
		OrderBy("uploaded_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list campus images query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query campus images: %w", err)
	}
	defer rows.Close()

	var images []models.CampusImage
	for rows.Next() {
		var img models.CampusImage
		if err := rows.Scan(&img.ID, &img.URL, &img.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campus image row: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campus image rows: %w", err)
	}

	return images, nil
}

// GetByID retrieves a single slideshow image
func (r *CampusImageRepository) GetByID(ctx context.Context, id int64) (*models.CampusImage, error) {
	var img models.CampusImage
	err := r.db.QueryRow(ctx,
		"SELECT id, url, uploaded_at FROM campus_images WHERE id = $1", id,
	).Scan(&img.ID, &img.URL, &img.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrCampusImageNotFound
		}
		return nil, fmt.Errorf("error querying campus image ID=%d: %w", id, err)
	}
	return &img, nil
}

// Create inserts a slideshow image, refusing once the slide cap is reached.
// The count check and the insert run as one statement so concurrent inserts
// cannot overshoot the cap.
func (r *CampusImageRepository) Create(ctx context.Context, url string) (*models.CampusImage, error) {
	var img models.CampusImage
	err := r.db.QueryRow(ctx,
		`INSERT INTO campus_images (url)
		 SELECT $1 WHERE (SELECT COUNT(*) FROM campus_images) < $2
		 RETURNING id, uploaded_at`,
		url, models.MaxCampusImages,
	).Scan(&img.ID, &img.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSlideLimitReached
		}
		logger.Error().Err(err).Msg("Error inserting campus image")
		return nil, fmt.Errorf("error inserting campus image: %w", err)
	}

	img.URL = url
	logger.Info().Int64("imageID", img.ID).Msg("Campus image created")
	return &img, nil
}

// Delete removes a slideshow image
func (r *CampusImageRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM campus_images WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("imageID", id).Msg("Error deleting campus image")
		return fmt.Errorf("error deleting campus image ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCampusImageNotFound
	}
	return nil
}
