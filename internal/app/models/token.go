package models

import "time"

// RefreshToken is an issued refresh token bound to an operator
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	MemberID  int64     `json:"memberId" db:"member_id"`
	Token     string    `json:"-" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
