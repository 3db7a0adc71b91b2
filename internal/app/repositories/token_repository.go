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

// TokenRepository handles refresh token persistence
type TokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Store persists a newly issued refresh token
func (r *TokenRepository) Store(ctx context.Context, token *models.RefreshToken) error {
	querySql, args, err := r.sb.Insert("refresh_tokens").
		Columns("member_id", "token", "expires_at").
		Values(token.MemberID, token.Token, token.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build store refresh token query: %w", err)
	}

	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&token.ID, &token.CreatedAt); err != nil {
		logger.Error().Err(err).Int64("memberID", token.MemberID).Msg("Error storing refresh token")
		return fmt.Errorf("error storing refresh token: %w", err)
	}

	return nil
}

// GetByToken retrieves a refresh token by its opaque value
func (r *TokenRepository) GetByToken(ctx context.Context, value string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.QueryRow(ctx,
		`SELECT id, member_id, token, expires_at, revoked, created_at
		 FROM refresh_tokens WHERE token = $1`, value,
	).Scan(&token.ID, &token.MemberID, &token.Token, &token.ExpiresAt, &token.Revoked, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error querying refresh token: %w", err)
	}
	return &token, nil
}

// Revoke marks a refresh token as unusable
func (r *TokenRepository) Revoke(ctx context.Context, value string) error {
	cmdTag, err := r.db.Exec(ctx,
		"UPDATE refresh_tokens SET revoked = true WHERE token = $1", value)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}
	return nil
}

// RevokeAllForMember invalidates every refresh token held by an operator
func (r *TokenRepository) RevokeAllForMember(ctx context.Context, memberID int64) error {
	_, err := r.db.Exec(ctx,
		"UPDATE refresh_tokens SET revoked = true WHERE member_id = $1 AND revoked = false", memberID)
	if err != nil {
		return fmt.Errorf("error revoking refresh tokens for member ID=%d: %w", memberID, err)
	}
	return nil
}

// DeleteExpired removes tokens past their expiry
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, "DELETE FROM refresh_tokens WHERE expires_at < NOW()")
	if err != nil {
		return 0, fmt.Errorf("error deleting expired refresh tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
