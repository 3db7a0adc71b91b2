package dto

import "time"

// UploadCampusImageRequest adds one homepage slide; the collection is capped.
type UploadCampusImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// CreateMemoryRequest creates a year-grouped album. Images may carry raw
// data URI payloads; at most 15 are accepted.
type CreateMemoryRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Images      []string  `json:"images"`
}

// UpdateMemoryRequest is a partial memory update
type UpdateMemoryRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Images      *[]string  `json:"images,omitempty"`
}

// UpdateSiteConfigRequest upserts the singleton site configuration
type UpdateSiteConfigRequest struct {
	LogoURL        *string `json:"logoUrl,omitempty"`
	ContactAddress string  `json:"contactAddress"`
	ContactEmail   string  `json:"contactEmail"`
	ContactPhone   string  `json:"contactPhone"`
}
