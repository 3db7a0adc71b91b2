package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/helpers"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// NoticeRepository handles announcement database operations
type NoticeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var noticeColumns = []string{
	"id", "title", "content", "type", "is_pinned", "is_archived",
	"attachment_url", "posted_at", "expires_at",
}

func scanNotice(row pgx.Row) (*models.Notice, error) {
	var n models.Notice
	var attachment sql.NullString
	var expiresAt *time.Time

	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.Type, &n.IsPinned, &n.IsArchived,
		&attachment, &n.PostedAt, &expiresAt,
	)
	if err != nil {
		return nil, err
	}

	n.AttachmentURL = helpers.NullStringPtr(attachment)
	n.ExpiresAt = expiresAt
	return &n, nil
}

// List retrieves notices pinned-first, then newest-first. The ordering is
// fixed; callers cannot choose another sort.
func (r *NoticeRepository) List(ctx context.Context, includeArchived bool) ([]models.Notice, error) {
	builder := r.sb.Select(noticeColumns...).
		From("notices").
		OrderBy("is_pinned DESC", "posted_at DESC")
	if !includeArchived {
		builder = builder.Where(squirrel.Eq{"is_archived": false})
	}

	querySql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notices query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying notices")
		return nil, fmt.Errorf("failed to query notices: %w", err)
	}
	defer rows.Close()

	notices := []models.Notice{}
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notice row: %w", err)
		}
		notices = append(notices, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notice rows: %w", err)
	}

	return notices, nil
}

// GetByID retrieves a notice by id
func (r *NoticeRepository) GetByID(ctx context.Context, id int64) (*models.Notice, error) {
	querySql, args, err := r.sb.Select(noticeColumns...).
		From("notices").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get notice query: %w", err)
	}

	n, err := scanNotice(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("error querying notice ID=%d: %w", id, err)
	}

	return n, nil
}

// Create inserts a new notice. AttachmentURL must already be durable.
func (r *NoticeRepository) Create(ctx context.Context, n *models.Notice) (int64, error) {
	querySql, args, err := r.sb.Insert("notices").
		Columns("title", "content", "type", "is_pinned", "attachment_url", "expires_at").
		Values(n.Title, n.Content, n.Type, n.IsPinned, helpers.GetNullString(n.AttachmentURL), n.ExpiresAt).
		Suffix("RETURNING id, posted_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create notice query: %w", err)
	}

	var id int64
	var postedAt time.Time
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&id, &postedAt); err != nil {
		logger.Error().Err(err).Msg("Error inserting notice")
		return 0, fmt.Errorf("error inserting notice: %w", err)
	}

	n.ID = id
	n.PostedAt = postedAt

	logger.Info().Int64("noticeID", id).Str("title", n.Title).Msg("Notice created")
	return id, nil
}

// Update applies a partial update to a notice
func (r *NoticeRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	querySql, args, err := r.sb.Update("notices").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update notice query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noticeID", id).Msg("Error updating notice")
		return fmt.Errorf("error updating notice ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}

	return nil
}

// Delete removes a notice
func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	querySql, args, err := r.sb.Delete("notices").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete notice query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noticeID", id).Msg("Error deleting notice")
		return fmt.Errorf("error deleting notice ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}

	return nil
}
