package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/pkg/helpers"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// AuditLogRepository handles the append-only audit trail
type AuditLogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(db *pgxpool.Pool) *AuditLogRepository {
	return &AuditLogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Append records one audit entry
func (r *AuditLogRepository) Append(ctx context.Context, entry *models.AuditLogEntry) error {
	querySql, args, err := r.sb.Insert("audit_logs").
		Columns("action", "actor", "target", "details").
		Values(entry.Action, entry.Actor, entry.Target, helpers.GetContentNullString(entry.Details)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build append audit log query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		logger.Error().Err(err).Str("action", entry.Action).Msg("Error appending audit log entry")
		return fmt.Errorf("error appending audit log entry: %w", err)
	}

	return nil
}

// List retrieves audit entries newest-first
func (r *AuditLogRepository) List(ctx context.Context, offset uint64, limit int) ([]models.AuditLogEntry, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM audit_logs").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit log entries: %w", err)
	}

	if total == 0 {
		return []models.AuditLogEntry{}, 0, nil
	}

	querySql, args, err := r.sb.Select("id", "action", "actor", "target", "details", "created_at").
		From("audit_logs").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list audit logs query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audit log entries: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var e models.AuditLogEntry
		var details sql.NullString
		if err := rows.Scan(&e.ID, &e.Action, &e.Actor, &e.Target, &details, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		e.Details = details.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating audit log rows: %w", err)
	}

	return entries, total, nil
}
