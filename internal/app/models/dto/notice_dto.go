package dto

import (
	"time"

	"github.com/bimt/campushub/internal/app/models"
)

// CreateNoticeRequest creates an announcement. Attachment may be a raw data
// URI payload and is stored before the record is inserted.
type CreateNoticeRequest struct {
	Title      string            `json:"title" binding:"required"`
	Content    string            `json:"content" binding:"required"`
	Type       models.NoticeType `json:"type" binding:"required,oneof=campus exam event course"`
	IsPinned   bool              `json:"isPinned"`
	Attachment string            `json:"attachmentUrl,omitempty"`
	ExpiresAt  *time.Time        `json:"expiresAt,omitempty"`
}

// UpdateNoticeRequest is a partial notice update
type UpdateNoticeRequest struct {
	Title      *string            `json:"title,omitempty"`
	Content    *string            `json:"content,omitempty"`
	Type       *models.NoticeType `json:"type,omitempty" binding:"omitempty,oneof=campus exam event course"`
	IsPinned   *bool              `json:"isPinned,omitempty"`
	IsArchived *bool              `json:"isArchived,omitempty"`
	ExpiresAt  *time.Time         `json:"expiresAt,omitempty"`
}
