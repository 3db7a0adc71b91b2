package dto

import "github.com/bimt/campushub/internal/app/models"

// CreateTeamMemberRequest registers a new operator (super_admin only).
// Avatar may carry a raw data URI payload.
type CreateTeamMemberRequest struct {
	Username          string      `json:"username" binding:"required"`
	Password          string      `json:"password" binding:"required"`
	FullName          string      `json:"fullName" binding:"required"`
	Title             string      `json:"title"`
	Role              models.Role `json:"role" binding:"required,oneof=moderator super_admin"`
	Avatar            string      `json:"avatarUrl,omitempty"`
	LinkedStudentSlug *string     `json:"linkedStudentSlug,omitempty"`
}

// UpdateOwnProfileRequest lets an operator edit their own admin profile
type UpdateOwnProfileRequest struct {
	FullName          *string `json:"fullName,omitempty"`
	Title             *string `json:"title,omitempty"`
	Avatar            *string `json:"avatarUrl,omitempty"`
	LinkedStudentSlug *string `json:"linkedStudentSlug,omitempty"`
	Password          *string `json:"password,omitempty"`
}

// TeamMemberResponse is an operator plus their resolved public profile link.
// LinkedStudent is nil when the slug no longer resolves to a student.
type TeamMemberResponse struct {
	models.TeamMember
	LinkedStudent *models.Student `json:"linkedStudent,omitempty"`
}
