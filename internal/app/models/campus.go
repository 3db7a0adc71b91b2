package models

import "time"

// MaxCampusImages caps the homepage slideshow collection
const MaxCampusImages = 5

// MaxMemoryImages caps the images held by a single campus memory
const MaxMemoryImages = 15

// CampusImage is one slide in the homepage slideshow
type CampusImage struct {
	ID         int64     `json:"id" db:"id"`
	URL        string    `json:"url" db:"url"`
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}

// CampusMemory is a year-grouped historical album
type CampusMemory struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	MemoryDate  time.Time `json:"date" db:"memory_date"`
	Images      []string  `json:"images" db:"images"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Year returns the album grouping year derived from the memory date
func (m *CampusMemory) Year() int {
	return m.MemoryDate.Year()
}
