package dto

import "github.com/bimt/campushub/internal/app/models"

// LoginRequest is an operator login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest rotates a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// LoginResponse carries the token pair and the authenticated operator
type LoginResponse struct {
	Tokens TokenResponse      `json:"tokens"`
	Member *models.TeamMember `json:"member"`
}
