package models

import "time"

// NoticeType categorizes an announcement
type NoticeType string

const (
	NoticeCampus NoticeType = "campus"
	NoticeExam   NoticeType = "exam"
	NoticeEvent  NoticeType = "event"
	NoticeCourse NoticeType = "course"
)

// Notice defines an announcement based on the 'notices' table.
// IsArchived and ExpiresAt are advisory display fields; nothing enforces them.
type Notice struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Content       string     `json:"content" db:"content"`
	Type          NoticeType `json:"type" db:"type"`
	IsPinned      bool       `json:"isPinned" db:"is_pinned"`
	IsArchived    bool       `json:"isArchived" db:"is_archived"`
	AttachmentURL *string    `json:"attachmentUrl,omitempty" db:"attachment_url"`
	PostedAt      time.Time  `json:"postedAt" db:"posted_at"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty" db:"expires_at"`
}
