package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/auth"
)

// Context keys for the authenticated operator. Identity lives only in the
// request context; nothing is stored process-wide.
const (
	ContextMemberID = "memberID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware validates tokens and enforces role requirements
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and loads the operator identity into
// the request context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}

			detail := dto.NewErrorDetail(code, "Authentication failed").WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		c.Set(ContextMemberID, claims.MemberID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, models.Role(claims.Role))

		c.Next()
	}
}

// ModeratorRequired allows moderator and super_admin roles
func (m *AuthMiddleware) ModeratorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleFromContext(c).CanModerate() {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Moderator access required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}
		c.Next()
	}
}

// SuperAdminRequired allows only the super_admin role
func (m *AuthMiddleware) SuperAdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleFromContext(c).IsSuperAdmin() {
			detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Super admin access required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
			return
		}
		c.Next()
	}
}

// MemberIDFromContext returns the authenticated operator's id, 0 when absent
func MemberIDFromContext(c *gin.Context) int64 {
	if v, ok := c.Get(ContextMemberID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// UsernameFromContext returns the authenticated operator's username
func UsernameFromContext(c *gin.Context) string {
	if v, ok := c.Get(ContextUsername); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// RoleFromContext returns the authenticated operator's role
func RoleFromContext(c *gin.Context) models.Role {
	if v, ok := c.Get(ContextRole); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return ""
}
