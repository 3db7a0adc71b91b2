package models

import "time"

// StudentStatus is the lifecycle state of a directory entry
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentGraduated StudentStatus = "graduated"
	StudentSuspended StudentStatus = "suspended"
)

// Achievement is a structured sub-record on a student profile
type Achievement struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title"`
	Date          string `json:"date,omitempty"`
	Description   string `json:"description,omitempty"`
	AttachmentURL string `json:"attachmentUrl,omitempty"`
}

// Course is a course a student took, optionally with a certificate
type Course struct {
	Name           string `json:"name"`
	Code           string `json:"code,omitempty"`
	CertificateURL string `json:"certificateUrl,omitempty"`
}

// SemesterGPA is one semester's GPA entry
type SemesterGPA struct {
	Semester string `json:"semester"`
	GPA      string `json:"gpa"`
}

// SocialLink points to a student's external profile
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Student defines the directory entry model based on the 'students' table.
// Slug is unique and immutable after creation. While IsLocked is true the
// record may only be changed through the admin console.
type Student struct {
	ID            int64         `json:"id" db:"id"`
	Slug          string        `json:"slug" db:"slug"`
	FullName      string        `json:"fullName" db:"full_name"`
	Department    string        `json:"department" db:"department"`
	Intake        string        `json:"intake" db:"intake"`
	Bio           string        `json:"bio" db:"bio"`
	AvatarURL     string        `json:"avatarUrl" db:"avatar_url"`
	GalleryImages []string      `json:"galleryImages" db:"gallery_images"`
	Achievements  []Achievement `json:"achievements" db:"achievements"`
	Courses       []Course      `json:"courses" db:"courses"`
	CGPA          []SemesterGPA `json:"cgpa" db:"cgpa"`
	SocialLinks   []SocialLink  `json:"socialLinks" db:"social_links"`
	ContactEmail  *string       `json:"contactEmail,omitempty" db:"contact_email"`
	Views         int64         `json:"views" db:"views"`
	IsFeatured    bool          `json:"isFeatured" db:"is_featured"`
	IsLocked      bool          `json:"isLocked" db:"is_locked"`
	Status        StudentStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}
