package dto

import "github.com/bimt/campushub/internal/app/models"

// StudentFilterRequest carries directory filters; all are combined with AND.
type StudentFilterRequest struct {
	Department string // equality
	Intake     string // substring
	Search     string // name substring
	Page       int
	PageSize   int
}

// SelfEditRequest is a one-shot self-service profile edit. Media fields may
// carry either durable references or raw data URI payloads.
type SelfEditRequest struct {
	Bio           string               `json:"bio"`
	AvatarURL     string               `json:"avatarUrl"`
	GalleryImages []string             `json:"galleryImages"`
	Achievements  []models.Achievement `json:"achievements"`
	Courses       []models.Course      `json:"courses"`
	CGPA          []models.SemesterGPA `json:"cgpa"`
	SocialLinks   []models.SocialLink  `json:"socialLinks"`
	ContactEmail  *string              `json:"contactEmail,omitempty"`
}

// AdminUpdateStudentRequest is the admin console's partial student update.
type AdminUpdateStudentRequest struct {
	FullName   *string               `json:"fullName,omitempty"`
	Department *string               `json:"department,omitempty"`
	Intake     *string               `json:"intake,omitempty"`
	Bio        *string               `json:"bio,omitempty"`
	Status     *models.StudentStatus `json:"status,omitempty" binding:"omitempty,oneof=active graduated suspended"`
	IsFeatured *bool                 `json:"isFeatured,omitempty"`
}
