package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
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
	"github.com/bimt/campushub/internal/pkg/dberrors"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// StudentRepository handles directory entry database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{
	"id", "slug", "full_name", "department", "intake", "bio", "avatar_url",
	"gallery_images", "achievements", "courses", "cgpa", "social_links",
	"contact_email", "views", "is_featured", "is_locked", "status",
	"created_at", "updated_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	var achievements, courses, cgpa, socialLinks []byte
	var contactEmail sql.NullString

	err := row.Scan(
		&s.ID, &s.Slug, &s.FullName, &s.Department, &s.Intake, &s.Bio,
		&s.AvatarURL, &s.GalleryImages, &achievements, &courses, &cgpa,
		&socialLinks, &contactEmail, &s.Views, &s.IsFeatured, &s.IsLocked,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if contactEmail.Valid {
		s.ContactEmail = &contactEmail.String
	}
	if err := unmarshalJSONField(achievements, &s.Achievements); err != nil {
		return nil, err
	}
	if err := unmarshalJSONField(courses, &s.Courses); err != nil {
		return nil, err
	}
	if err := unmarshalJSONField(cgpa, &s.CGPA); err != nil {
		return nil, err
	}
	if err := unmarshalJSONField(socialLinks, &s.SocialLinks); err != nil {
		return nil, err
	}
	if s.GalleryImages == nil {
		s.GalleryImages = []string{}
	}

	return &s, nil
}

func unmarshalJSONField(data []byte, dst interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode jsonb column: %w", err)
	}
	return nil
}

func marshalJSONField(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb column: %w", err)
	}
	return data, nil
}

// List retrieves directory entries with optional filters. Department is an
// equality match; intake and search are case-insensitive substring matches;
// all filters combine with AND.
func (r *StudentRepository) List(ctx context.Context, department, intake, search string, offset uint64, limit int) ([]models.Student, int64, error) {
	where := squirrel.And{}
	if department != "" {
		where = append(where, squirrel.Eq{"department": department})
	}
	if intake != "" {
		where = append(where, squirrel.ILike{"intake": "%" + strings.TrimSpace(intake) + "%"})
	}
	if search != "" {
		where = append(where, squirrel.ILike{"full_name": "%" + strings.TrimSpace(search) + "%"})
	}

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("students").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	if total == 0 {
		return []models.Student{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(studentColumns...).
		From("students").
		Where(where).
		OrderBy("is_featured DESC", "created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

// GetBySlug retrieves one directory entry by its slug
func (r *StudentRepository) GetBySlug(ctx context.Context, slug string) (*models.Student, error) {
	querySql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error querying student by slug")
		return nil, fmt.Errorf("error querying student slug=%s: %w", slug, err)
	}

	return s, nil
}

// GetByID retrieves one directory entry by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	querySql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error querying student by ID")
		return nil, fmt.Errorf("error querying student ID=%d: %w", id, err)
	}

	return s, nil
}

// Create inserts a new directory entry
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) (int64, error) {
	return insertStudent(ctx, r.db, r.sb, s)
}

// insertStudent runs the directory entry insert against the pool or an open
// transaction, so submission approval can claim the draft and materialize
// the profile atomically.
func insertStudent(ctx context.Context, q db.Querier, sb squirrel.StatementBuilderType, s *models.Student) (int64, error) {
	achievements, err := marshalJSONField(s.Achievements)
	if err != nil {
		return 0, err
	}
	courses, err := marshalJSONField(s.Courses)
	if err != nil {
		return 0, err
	}
	cgpa, err := marshalJSONField(s.CGPA)
	if err != nil {
		return 0, err
	}
	socialLinks, err := marshalJSONField(s.SocialLinks)
	if err != nil {
		return 0, err
	}

	var contactEmail interface{}
	if s.ContactEmail != nil {
		contactEmail = *s.ContactEmail
	}

	querySql, args, err := sb.Insert("students").
		Columns(
			"slug", "full_name", "department", "intake", "bio", "avatar_url",
			"gallery_images", "achievements", "courses", "cgpa", "social_links",
			"contact_email", "is_featured", "is_locked", "status",
		).
		Values(
			s.Slug, s.FullName, s.Department, s.Intake, s.Bio, s.AvatarURL,
			s.GalleryImages, achievements, courses, cgpa, socialLinks,
			contactEmail, s.IsFeatured, s.IsLocked, s.Status,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, querySql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_slug_key") {
			return 0, apperrors.ErrSlugAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting student")
		return 0, fmt.Errorf("error inserting student: %w", err)
	}

	s.ID = id
	logger.Info().Int64("studentID", id).Str("slug", s.Slug).Msg("Student created")
	return id, nil
}

// SelfEdit persists a self-service edit with a single conditional update:
// the row is touched only while unlocked, and a successful edit always
// re-locks the profile. A concurrent lock makes the edit lose cleanly.
func (r *StudentRepository) SelfEdit(ctx context.Context, slug string, s *models.Student) error {
	achievements, err := marshalJSONField(s.Achievements)
	if err != nil {
		return err
	}
	courses, err := marshalJSONField(s.Courses)
	if err != nil {
		return err
	}
	cgpa, err := marshalJSONField(s.CGPA)
	if err != nil {
		return err
	}
	socialLinks, err := marshalJSONField(s.SocialLinks)
	if err != nil {
		return err
	}

	var contactEmail interface{}
	if s.ContactEmail != nil {
		contactEmail = *s.ContactEmail
	}

	querySql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"bio":            s.Bio,
			"avatar_url":     s.AvatarURL,
			"gallery_images": s.GalleryImages,
			"achievements":   achievements,
			"courses":        courses,
			"cgpa":           cgpa,
			"social_links":   socialLinks,
			"contact_email":  contactEmail,
			"is_locked":      true,
			"updated_at":     time.Now(),
		}).
		Where(squirrel.Eq{"slug": slug, "is_locked": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build self edit query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("Error executing self edit")
		return fmt.Errorf("error updating student slug=%s: %w", slug, err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the slug is unknown or the profile locked since load time.
		if _, err := r.GetBySlug(ctx, slug); err != nil {
			return err
		}
		return apperrors.ErrStudentLocked
	}

	logger.Info().Str("slug", slug).Msg("Student self-edit persisted, profile re-locked")
	return nil
}

// AdminUpdate applies a partial update through the admin console
func (r *StudentRepository) AdminUpdate(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	querySql, args, err := r.sb.Update("students").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build admin update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing admin student update")
		return fmt.Errorf("error updating student ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// ToggleLock flips the edit lock atomically and returns the new value
func (r *StudentRepository) ToggleLock(ctx context.Context, id int64) (bool, error) {
	var locked bool
	err := r.db.QueryRow(ctx,
		`UPDATE students SET is_locked = NOT is_locked, updated_at = NOW() WHERE id = $1 RETURNING is_locked`,
		id,
	).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error toggling student lock")
		return false, fmt.Errorf("error toggling lock for student ID=%d: %w", id, err)
	}

	return locked, nil
}

// ToggleStatus flips a student between active and suspended atomically and
// returns the new status
func (r *StudentRepository) ToggleStatus(ctx context.Context, id int64) (models.StudentStatus, error) {
	var status models.StudentStatus
	err := r.db.QueryRow(ctx,
		`UPDATE students
		 SET status = CASE WHEN status = 'suspended' THEN 'active' ELSE 'suspended' END,
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING status`,
		id,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error toggling student status")
		return "", fmt.Errorf("error toggling status for student ID=%d: %w", id, err)
	}

	return status, nil
}

// ToggleFeatured flips the featured flag atomically and returns the new value
func (r *StudentRepository) ToggleFeatured(ctx context.Context, id int64) (bool, error) {
	var featured bool
	err := r.db.QueryRow(ctx,
		`UPDATE students SET is_featured = NOT is_featured, updated_at = NOW() WHERE id = $1 RETURNING is_featured`,
		id,
	).Scan(&featured)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error toggling student featured flag")
		return false, fmt.Errorf("error toggling featured flag for student ID=%d: %w", id, err)
	}

	return featured, nil
}

// IncrementViews bumps the profile view counter atomically
func (r *StudentRepository) IncrementViews(ctx context.Context, slug string) error {
	_, err := r.db.Exec(ctx, `UPDATE students SET views = views + 1 WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("error incrementing views for slug=%s: %w", slug, err)
	}
	return nil
}

// Delete removes a directory entry
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	querySql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error deleting student")
		return fmt.Errorf("error deleting student ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}
