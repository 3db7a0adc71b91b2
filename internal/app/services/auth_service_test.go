package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/auth"
)

type fakeMemberAuthStore struct {
	members map[string]*models.TeamMember
}

func (f *fakeMemberAuthStore) GetByID(_ context.Context, id int64) (*models.TeamMember, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, apperrors.ErrTeamMemberNotFound
}

func (f *fakeMemberAuthStore) GetByUsername(_ context.Context, username string) (*models.TeamMember, error) {
	if m, ok := f.members[username]; ok {
		return m, nil
	}
	return nil, apperrors.ErrTeamMemberNotFound
}

type fakeTokenStore struct {
	tokens         map[string]*models.RefreshToken
	revokedAllFor  []int64
	revokedSingles []string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeTokenStore) Store(_ context.Context, token *models.RefreshToken) error {
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeTokenStore) GetByToken(_ context.Context, value string) (*models.RefreshToken, error) {
	if t, ok := f.tokens[value]; ok {
		return t, nil
	}
	return nil, apperrors.ErrTokenNotFound
}

func (f *fakeTokenStore) Revoke(_ context.Context, value string) error {
	t, ok := f.tokens[value]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.Revoked = true
	f.revokedSingles = append(f.revokedSingles, value)
	return nil
}

func (f *fakeTokenStore) RevokeAllForMember(_ context.Context, memberID int64) error {
	f.revokedAllFor = append(f.revokedAllFor, memberID)
	for _, t := range f.tokens {
		if t.MemberID == memberID {
			t.Revoked = true
		}
	}
	return nil
}

func newAuthFixture(t *testing.T) (AuthService, *fakeMemberAuthStore, *fakeTokenStore) {
	t.Helper()

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	members := &fakeMemberAuthStore{members: map[string]*models.TeamMember{
		"moderator1": {ID: 1, Username: "moderator1", PasswordHash: hash, Role: models.RoleModerator},
	}}
	tokens := newFakeTokenStore()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "campushub.test",
	})

	return NewAuthService(members, tokens, jwtService), members, tokens
}

func TestLoginSuccess(t *testing.T) {
	svc, _, tokens := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "moderator1", Password: "correct horse"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, "Bearer", resp.Tokens.TokenType)
	assert.Equal(t, "moderator1", resp.Member.Username)

	// The refresh token must be persisted for later rotation
	_, ok := tokens.tokens[resp.Tokens.RefreshToken]
	assert.True(t, ok)
}

func TestLoginRejectsUnknownUserAndWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "moderator1", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, tokens := newAuthFixture(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "moderator1", Password: "correct horse"})
	require.NoError(t, err)
	oldToken := login.Tokens.RefreshToken

	refreshed, err := svc.RefreshToken(context.Background(), oldToken)
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, refreshed.RefreshToken)

	// The rotated-out token is revoked and cannot be used again normally
	assert.True(t, tokens.tokens[oldToken].Revoked)
}

func TestRefreshTokenReplayRevokesAllSessions(t *testing.T) {
	svc, _, tokens := newAuthFixture(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "moderator1", Password: "correct horse"})
	require.NoError(t, err)
	oldToken := login.Tokens.RefreshToken

	_, err = svc.RefreshToken(context.Background(), oldToken)
	require.NoError(t, err)

	// Presenting the already-rotated token again is treated as a hijack
	_, err = svc.RefreshToken(context.Background(), oldToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	assert.Equal(t, []int64{1}, tokens.revokedAllFor)
}

func TestRefreshTokenRejectsExpired(t *testing.T) {
	svc, _, tokens := newAuthFixture(t)

	tokens.tokens["stale"] = &models.RefreshToken{
		MemberID:  1,
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err := svc.RefreshToken(context.Background(), "stale")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestRefreshTokenUnknownToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.RefreshToken(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, tokens := newAuthFixture(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "moderator1", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.Tokens.RefreshToken))
	assert.True(t, tokens.tokens[login.Tokens.RefreshToken].Revoked)

	assert.ErrorIs(t, svc.Logout(context.Background(), "never-issued"), apperrors.ErrTokenNotFound)
}
