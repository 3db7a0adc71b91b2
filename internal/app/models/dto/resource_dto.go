package dto

import "github.com/bimt/campushub/internal/app/models"

// ResourceFilterRequest filters the public resource listing (AND semantics)
type ResourceFilterRequest struct {
	Department string
	Type       string
	Subject    string
	Page       int
	PageSize   int
}

// CreateResourceRequest publishes a downloadable asset through the admin
// console. File may be a raw data URI payload.
type CreateResourceRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Type        models.ResourceType `json:"type" binding:"required,oneof=note thesis paper"`
	Department  string              `json:"department" binding:"required"`
	Intake      *string             `json:"intake,omitempty"`
	Subject     string              `json:"subject" binding:"required"`
	AuthorName  string              `json:"authorName" binding:"required"`
	File        string              `json:"downloadUrl" binding:"required"`
}

// UpdateResourceRequest is a partial resource update
type UpdateResourceRequest struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Type        *models.ResourceType `json:"type,omitempty" binding:"omitempty,oneof=note thesis paper"`
	Department  *string              `json:"department,omitempty"`
	Intake      *string              `json:"intake,omitempty"`
	Subject     *string              `json:"subject,omitempty"`
	AuthorName  *string              `json:"authorName,omitempty"`
}
