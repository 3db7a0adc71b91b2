package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/auth"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// memberAuthStore is the operator lookup surface used for authentication
type memberAuthStore interface {
	GetByID(ctx context.Context, id int64) (*models.TeamMember, error)
	GetByUsername(ctx context.Context, username string) (*models.TeamMember, error)
}

// tokenStore persists refresh tokens
type tokenStore interface {
	Store(ctx context.Context, token *models.RefreshToken) error
	GetByToken(ctx context.Context, value string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, value string) error
	RevokeAllForMember(ctx context.Context, memberID int64) error
}

// AuthService defines the interface for operator authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	memberStore memberAuthStore
	tokenStore  tokenStore
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(memberStore memberAuthStore, tokenStore tokenStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		memberStore: memberStore,
		tokenStore:  tokenStore,
		jwtService:  jwtService,
	}
}

// Login authenticates an operator and issues a token pair. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	member, err := s.memberStore.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamMemberNotFound) {
			logger.Warn().Str("username", req.Username).Msg("Login attempt for unknown username")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading operator for login: %w", err)
	}

	if !auth.CheckPassword(member.PasswordHash, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, member)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", member.Username).Str("role", string(member.Role)).Msg("Operator logged in")
	return &dto.LoginResponse{Tokens: *tokens, Member: member}, nil
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued. Expired and revoked tokens are rejected.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenStore.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error loading refresh token: %w", err)
	}

	if stored.Revoked {
		// A replayed token is a hijack signal; drop every session.
		logger.Warn().Int64("memberID", stored.MemberID).Msg("Revoked refresh token replayed, revoking all sessions")
		if err := s.tokenStore.RevokeAllForMember(ctx, stored.MemberID); err != nil {
			logger.Error().Err(err).Int64("memberID", stored.MemberID).Msg("Failed to revoke member sessions")
		}
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	member, err := s.memberStore.GetByID(ctx, stored.MemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamMemberNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error loading operator for refresh: %w", err)
	}

	if err := s.tokenStore.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking rotated refresh token: %w", err)
	}

	return s.issueTokens(ctx, member)
}

// Logout revokes the presented refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokenStore.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return apperrors.ErrTokenNotFound
		}
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, member *models.TeamMember) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(member)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	record := &models.RefreshToken{
		MemberID:  member.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}
	if err := s.tokenStore.Store(ctx, record); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}
