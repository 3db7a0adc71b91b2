package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// CampusMemoryRepository handles memory album database operations
type CampusMemoryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCampusMemoryRepository creates a new CampusMemoryRepository
func NewCampusMemoryRepository(db *pgxpool.Pool) *CampusMemoryRepository {
	return &CampusMemoryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var campusMemoryColumns = []string{"id", "title", "description", "memory_date", "images", "created_at"}

func scanCampusMemory(row pgx.Row) (*models.CampusMemory, error) {
	var mem models.CampusMemory
	err := row.Scan(&mem.ID, &mem.Title, &mem.Description, &mem.MemoryDate, &mem.Images, &mem.CreatedAt)
	if err != nil {
		return nil, err
	}
	if mem.Images == nil {
		mem.Images = []string{}
	}
	return &mem, nil
}

// List retrieves memory albums ordered by event date, newest first
func (r *CampusMemoryRepository) List(ctx context.Context) ([]models.CampusMemory, error) {
	querySql, args, err := r.sb.Select(campusMemoryColumns...).
		From("campus_memories").
		OrderBy("memory_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list memories query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query campus memories: %w", err)
	}
	defer rows.Close()

	var memories []models.CampusMemory
	for rows.Next() {
		mem, err := scanCampusMemory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan memory row: %w", err)
		}
		memories = append(memories, *mem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memory rows: %w", err)
	}

	return memories, nil
}

// GetByID retrieves a memory album by id
func (r *CampusMemoryRepository) GetByID(ctx context.Context, id int64) (*models.CampusMemory, error) {
	querySql, args, err := r.sb.Select(campusMemoryColumns...).
		From("campus_memories").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get memory query: %w", err)
	}

	mem, err := scanCampusMemory(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemoryNotFound
		}
		return nil, fmt.Errorf("error querying memory ID=%d: %w", id, err)
	}

	return mem, nil
}

// Create inserts a memory album
func (r *CampusMemoryRepository) Create(ctx context.Context, mem *models.CampusMemory) (int64, error) {
	querySql, args, err := r.sb.Insert("campus_memories").
		Columns("title", "description", "memory_date", "images").
		Values(mem.Title, mem.Description, mem.MemoryDate, mem.Images).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create memory query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&mem.ID, &mem.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error inserting campus memory")
		return 0, fmt.Errorf("error inserting campus memory: %w", err)
	}

	logger.Info().Int64("memoryID", mem.ID).Str("title", mem.Title).Msg("Campus memory created")
	return mem.ID, nil
}

// Update applies a partial update to a memory album
func (r *CampusMemoryRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	querySql, args, err := r.sb.Update("campus_memories").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update memory query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("memoryID", id).Msg("Error updating campus memory")
		return fmt.Errorf("error updating campus memory ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMemoryNotFound
	}

	return nil
}

// Delete removes a memory album
func (r *CampusMemoryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM campus_memories WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("memoryID", id).Msg("Error deleting campus memory")
		return fmt.Errorf("error deleting campus memory ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMemoryNotFound
	}
	return nil
}
