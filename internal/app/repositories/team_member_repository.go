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
	"github.com/bimt/campushub/internal/pkg/dberrors"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// TeamMemberRepository handles operator account database operations
type TeamMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(db *pgxpool.Pool) *TeamMemberRepository {
	return &TeamMemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var teamMemberColumns = []string{
	"id", "username", "password_hash", "full_name", "title", "avatar_url",
	"role", "linked_student_slug", "created_at",
}

func scanTeamMember(row pgx.Row) (*models.TeamMember, error) {
	var m models.TeamMember
	err := row.Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.FullName, &m.Title,
		&m.AvatarURL, &m.Role, &m.LinkedStudentSlug, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List retrieves all operators ordered by creation time
func (r *TeamMemberRepository) List(ctx context.Context) ([]models.TeamMember, error) {
	querySql, args, err := r.sb.Select(teamMemberColumns...).
		From("team_members").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list team members query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member row: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team member rows: %w", err)
	}

	return members, nil
}

// GetByID retrieves an operator by id
func (r *TeamMemberRepository) GetByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	querySql, args, err := r.sb.Select(teamMemberColumns...).
		From("team_members").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get team member query: %w", err)
	}

	m, err := scanTeamMember(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("error querying team member ID=%d: %w", id, err)
	}

	return m, nil
}

// GetByUsername retrieves an operator by login name
func (r *TeamMemberRepository) GetByUsername(ctx context.Context, username string) (*models.TeamMember, error) {
	querySql, args, err := r.sb.Select(teamMemberColumns...).
		From("team_members").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get team member query: %w", err)
	}

	m, err := scanTeamMember(r.db.QueryRow(ctx, querySql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("error querying team member username=%s: %w", username, err)
	}

	return m, nil
}

// Create inserts a new operator account
func (r *TeamMemberRepository) Create(ctx context.Context, m *models.TeamMember) (int64, error) {
	querySql, args, err := r.sb.Insert("team_members").
		Columns("username", "password_hash", "full_name", "title", "avatar_url", "role", "linked_student_slug").
		Values(m.Username, m.PasswordHash, m.FullName, m.Title, m.AvatarURL, m.Role, m.LinkedStudentSlug).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create team member query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "team_members_username_key") {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
		logger.Error().Err(err).Str("username", m.Username).Msg("Error inserting team member")
		return 0, fmt.Errorf("error inserting team member: %w", err)
	}

	logger.Info().Int64("memberID", m.ID).Str("username", m.Username).Msg("Team member created")
	return m.ID, nil
}

// UpdateProfile applies a partial update to an operator's own profile fields
func (r *TeamMemberRepository) UpdateProfile(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	querySql, args, err := r.sb.Update("team_members").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update team member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("memberID", id).Msg("Error updating team member")
		return fmt.Errorf("error updating team member ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeamMemberNotFound
	}

	return nil
}

// Delete removes an operator account
func (r *TeamMemberRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM team_members WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("memberID", id).Msg("Error deleting team member")
		return fmt.Errorf("error deleting team member ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeamMemberNotFound
	}
	return nil
}

// ActivityScores returns the number of audit log entries recorded per actor
// username. Operators with no recorded actions are absent from the map.
func (r *TeamMemberRepository) ActivityScores(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx,
		"SELECT actor, COUNT(*) FROM audit_logs GROUP BY actor")
	if err != nil {
		return nil, fmt.Errorf("failed to query activity scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[string]int64)
	for rows.Next() {
		var actor string
		var count int64
		if err := rows.Scan(&actor, &count); err != nil {
			return nil, fmt.Errorf("failed to scan activity score row: %w", err)
		}
		scores[actor] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity score rows: %w", err)
	}

	return scores, nil
}
