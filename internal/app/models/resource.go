package models

import "time"

// ResourceType categorizes a downloadable academic asset
type ResourceType string

const (
	ResourceNote   ResourceType = "note"
	ResourceThesis ResourceType = "thesis"
	ResourcePaper  ResourceType = "paper"
)

// Resource defines a downloadable asset based on the 'resources' table.
// Downloads and Version are advisory counters; no code path increments them.
type Resource struct {
	ID          int64        `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Type        ResourceType `json:"type" db:"type"`
	Department  string       `json:"department" db:"department"`
	Intake      *string      `json:"intake,omitempty" db:"intake"`
	Subject     string       `json:"subject" db:"subject"`
	AuthorName  string       `json:"authorName" db:"author_name"`
	DownloadURL string       `json:"downloadUrl" db:"download_url"`
	UploadDate  time.Time    `json:"uploadDate" db:"upload_date"`
	Downloads   int64        `json:"downloads" db:"downloads"`
	Version     int          `json:"version" db:"version"`
}
