package dto

import "github.com/bimt/campushub/internal/app/models"

// CreateSubmissionRequest is a visitor-authored draft. Content file fields
// may carry raw data URI payloads; they are made durable before persistence.
type CreateSubmissionRequest struct {
	Type        models.SubmissionType    `json:"type" binding:"required,oneof=biography resource"`
	StudentName string                   `json:"studentName" binding:"required"`
	Department  string                   `json:"department" binding:"required"`
	Content     models.SubmissionContent `json:"content" binding:"required"`
}

// ReviewSubmissionRequest is a moderator decision on a pending draft
type ReviewSubmissionRequest struct {
	Decision models.SubmissionStatus `json:"decision" binding:"required,oneof=approved rejected"`
}

// ReviewSubmissionResponse reports the decision outcome; CreatedStudent is
// set only when approving a biography draft materialized a directory entry.
type ReviewSubmissionResponse struct {
	Submission      *models.Submission `json:"submission"`
	CreatedStudent  *models.Student    `json:"createdStudent,omitempty"`
	CreatedResource *models.Resource   `json:"createdResource,omitempty"`
}
