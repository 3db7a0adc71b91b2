package models

import "time"

// Role is an operator's privilege level
type Role string

const (
	RoleModerator  Role = "moderator"
	RoleSuperAdmin Role = "super_admin"
)

// CanModerate reports whether the role may use the moderation console
func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleSuperAdmin
}

// IsSuperAdmin reports whether the role may manage other operators
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// TeamMember defines an operator identity based on the 'team_members' table.
// LinkedStudentSlug is a weak reference resolved at read time; the pointed-at
// student may no longer exist. ActivityScore is derived from audit log counts
// and never stored.
type TeamMember struct {
	ID                int64     `json:"id" db:"id"`
	Username          string    `json:"username" db:"username"`
	PasswordHash      string    `json:"-" db:"password_hash"`
	FullName          string    `json:"fullName" db:"full_name"`
	Title             string    `json:"title" db:"title"`
	AvatarURL         string    `json:"avatarUrl" db:"avatar_url"`
	Role              Role      `json:"role" db:"role"`
	LinkedStudentSlug *string   `json:"linkedStudentSlug,omitempty" db:"linked_student_slug"`
	ActivityScore     int64     `json:"activityScore"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}
