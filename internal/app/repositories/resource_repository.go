package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/db"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/helpers"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// ResourceRepository handles downloadable asset database operations
type ResourceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var resourceColumns = []string{
	"id", "title", "description", "type", "department", "intake", "subject",
	"author_name", "download_url", "upload_date", "downloads", "version",
}

func scanResource(row pgx.Row) (*models.Resource, error) {
	var res models.Resource
	var intake sql.NullString

	err := row.Scan(
		&res.ID, &res.Title, &res.Description, &res.Type, &res.Department,
		&intake, &res.Subject, &res.AuthorName, &res.DownloadURL,
		&res.UploadDate, &res.Downloads, &res.Version,
	)
	if err != nil {
		return nil, err
	}

	res.Intake = helpers.NullStringPtr(intake)
	return &res, nil
}

// List retrieves resources newest-first with optional AND-combined filters
func (r *ResourceRepository) List(ctx context.Context, department, resType, subject string, offset uint64, limit int) ([]models.Resource, int64, error) {
	where := squirrel.And{}
	if department != "" {
		where = append(where, squirrel.Eq{"department": department})
	}
	if resType != "" {
		where = append(where, squirrel.Eq{"type": resType})
	}
	if subject != "" {
		where = append(where, squirrel.ILike{"subject": "%" + strings.TrimSpace(subject) + "%"})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("resources").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count resources query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count resources: %w", err)
	}

	if total == 0 {
		return []models.Resource{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(resourceColumns...).
		From("resources").
		Where(where).
		OrderBy("upload_date DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying resources")
		return nil, 0, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating resource rows: %w", err)
	}

	return resources, total, nil
}

// GetByID retrieves a resource by id
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	querySql, args, err := r.sb.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get resource query: %w", err)
	}

	res, err := scanResource(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLibraryResourceNotFound
		}
		return nil, fmt.Errorf("error querying resource ID=%d: %w", id, err)
	}

	return res, nil
}

// Create inserts a new resource. DownloadURL must already be durable.
func (r *ResourceRepository) Create(ctx context.Context, res *models.Resource) (int64, error) {
	return insertResource(ctx, r.db, r.sb, res)
}

// insertResource runs the resource insert against the pool or an open
// transaction, so submission approval can publish the draft atomically.
func insertResource(ctx context.Context, q db.Querier, sb squirrel.StatementBuilderType, res *models.Resource) (int64, error) {
	querySql, args, err := sb.Insert("resources").
		Columns("title", "description", "type", "department", "intake", "subject", "author_name", "download_url").
		Values(res.Title, res.Description, res.Type, res.Department,
			helpers.GetNullString(res.Intake), res.Subject, res.AuthorName, res.DownloadURL).
		Suffix("RETURNING id, upload_date").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create resource query: %w", err)
	}

	var id int64
	var uploadDate time.Time
	if err := q.QueryRow(ctx, querySql, args...).Scan(&id, &uploadDate); err != nil {
		logger.Error().Err(err).Msg("Error inserting resource")
		return 0, fmt.Errorf("error inserting resource: %w", err)
	}

	res.ID = id
	res.UploadDate = uploadDate
	res.Version = 1

	logger.Info().Int64("resourceID", id).Str("title", res.Title).Msg("Resource created")
	return id, nil
}

// Update applies a partial update to a resource
func (r *ResourceRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	querySql, args, err := r.sb.Update("resources").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error updating resource")
		return fmt.Errorf("error updating resource ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLibraryResourceNotFound
	}

	return nil
}

// Delete removes a resource
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	querySql, args, err := r.sb.Delete("resources").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error deleting resource")
		return fmt.Errorf("error deleting resource ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLibraryResourceNotFound
	}

	return nil
}
