package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/db"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// SubmissionRepository handles staged visitor draft database operations
type SubmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var submissionColumns = []string{
	"id", "type", "student_name", "department", "content", "status",
	"submitted_at", "reviewed_at",
}

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var sub models.Submission
	var content []byte
	var reviewedAt *time.Time

	err := row.Scan(
		&sub.ID, &sub.Type, &sub.StudentName, &sub.Department, &content,
		&sub.Status, &sub.SubmittedAt, &reviewedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.ReviewedAt = reviewedAt
	if err := unmarshalJSONField(content, &sub.Content); err != nil {
		return nil, err
	}

	return &sub, nil
}

// Create inserts a new pending submission
func (r *SubmissionRepository) Create(ctx context.Context, sub *models.Submission) (int64, error) {
	content, err := marshalJSONField(sub.Content)
	if err != nil {
		return 0, err
	}

	querySql, args, err := r.sb.Insert("submissions").
		Columns("type", "student_name", "department", "content", "status").
		Values(sub.Type, sub.StudentName, sub.Department, content, models.SubmissionPending).
		Suffix("RETURNING id, submitted_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create submission query: %w", err)
	}

	var id int64
	var submittedAt time.Time
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&id, &submittedAt); err != nil {
		logger.Error().Err(err).Msg("Error inserting submission")
		return 0, fmt.Errorf("error inserting submission: %w", err)
	}

	sub.ID = id
	sub.Status = models.SubmissionPending
	sub.SubmittedAt = submittedAt

	logger.Info().Int64("submissionID", id).Str("type", string(sub.Type)).Msg("Submission created")
	return id, nil
}

// GetByID retrieves a submission by id
func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	querySql, args, err := r.sb.Select(submissionColumns...).
		From("submissions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get submission query: %w", err)
	}

	sub, err := scanSubmission(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		logger.Error().Err(err).Int64("submissionID", id).Msg("Error querying submission")
		return nil, fmt.Errorf("error querying submission ID=%d: %w", id, err)
	}

	return sub, nil
}

// List retrieves submissions newest-first, optionally filtered by status
func (r *SubmissionRepository) List(ctx context.Context, status string, offset uint64, limit int) ([]models.Submission, int64, error) {
	where := squirrel.And{}
	if status != "" {
		where = append(where, squirrel.Eq{"status": status})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("submissions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count submissions query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	if total == 0 {
		return []models.Submission{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(submissionColumns...).
		From("submissions").
		Where(where).
		OrderBy("submitted_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list submissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan submission row: %w", err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating submission rows: %w", err)
	}

	return subs, total, nil
}

// MarkReviewed flips a pending submission to its terminal decision with a
// single conditional update. A submission that is no longer pending is left
// untouched and reported as already reviewed, which makes a repeated
// approval unable to materialize a second student.
func (r *SubmissionRepository) MarkReviewed(ctx context.Context, id int64, decision models.SubmissionStatus) error {
	return r.markReviewed(ctx, r.db, id, decision)
}

func (r *SubmissionRepository) markReviewed(ctx context.Context, q db.Querier, id int64, decision models.SubmissionStatus) error {
	cmdTag, err := q.Exec(ctx,
		`UPDATE submissions SET status = $2, reviewed_at = NOW() WHERE id = $1 AND status = 'pending'`,
		id, decision,
	)
	if err != nil {
		logger.Error().Err(err).Int64("submissionID", id).Msg("Error marking submission reviewed")
		return fmt.Errorf("error reviewing submission ID=%d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing row from a decided one.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrSubmissionAlreadyReviewed
	}

	logger.Info().Int64("submissionID", id).Str("decision", string(decision)).Msg("Submission reviewed")
	return nil
}

// ApproveWithStudent claims the pending draft and inserts the materialized
// directory entry in one transaction. A failed insert, including a slug
// collision, rolls the claim back and leaves the draft pending and retryable.
func (r *SubmissionRepository) ApproveWithStudent(ctx context.Context, id int64, student *models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.markReviewed(ctx, tx, id, models.SubmissionApproved); err != nil {
			return err
		}
		_, err := insertStudent(ctx, tx, r.sb, student)
		return err
	})
}

// ApproveWithResource claims the pending draft and publishes the resource in
// one transaction.
func (r *SubmissionRepository) ApproveWithResource(ctx context.Context, id int64, res *models.Resource) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.markReviewed(ctx, tx, id, models.SubmissionApproved); err != nil {
			return err
		}
		_, err := insertResource(ctx, tx, r.sb, res)
		return err
	})
}
