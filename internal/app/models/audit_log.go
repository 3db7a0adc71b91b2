package models

import "time"

// AuditLogEntry is an append-only record of a privileged mutation.
// Entries are immutable once written and only ever read back for display.
type AuditLogEntry struct {
	ID        int64     `json:"id" db:"id"`
	Action    string    `json:"action" db:"action"`
	Actor     string    `json:"actor" db:"actor"`
	Target    string    `json:"target" db:"target"`
	Details   string    `json:"details,omitempty" db:"details"`
	CreatedAt time.Time `json:"timestamp" db:"created_at"`
}
