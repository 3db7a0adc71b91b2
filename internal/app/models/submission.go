package models

import "time"

// SubmissionType distinguishes what a visitor draft contains
type SubmissionType string

const (
	SubmissionBiography SubmissionType = "biography"
	SubmissionResource  SubmissionType = "resource"
)

// SubmissionStatus is the moderation state of a draft
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// SubmissionContent is the free-form draft body. Which fields are set depends
// on the submission type: biography drafts carry profile fields, resource
// drafts carry title/description/download.
type SubmissionContent struct {
	// Biography fields
	Bio           string        `json:"bio,omitempty"`
	Intake        string        `json:"intake,omitempty"`
	AvatarURL     string        `json:"avatarUrl,omitempty"`
	GalleryImages []string      `json:"galleryImages,omitempty"`
	Achievements  []Achievement `json:"achievements,omitempty"`
	Courses       []Course      `json:"courses,omitempty"`
	CGPA          []SemesterGPA `json:"cgpa,omitempty"`
	SocialLinks   []SocialLink  `json:"socialLinks,omitempty"`
	ContactEmail  string        `json:"contactEmail,omitempty"`

	// Resource fields
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Subject     string `json:"subject,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// Submission defines a staged visitor draft based on the 'submissions' table
type Submission struct {
	ID          int64             `json:"id" db:"id"`
	Type        SubmissionType    `json:"type" db:"type"`
	StudentName string            `json:"studentName" db:"student_name"`
	Department  string            `json:"department" db:"department"`
	Content     SubmissionContent `json:"content" db:"content"`
	Status      SubmissionStatus  `json:"status" db:"status"`
	SubmittedAt time.Time         `json:"submittedAt" db:"submitted_at"`
	ReviewedAt  *time.Time        `json:"reviewedAt,omitempty" db:"reviewed_at"`
}
