package models

// SiteConfigID is the fixed key of the singleton configuration row
const SiteConfigID = 1

// SiteConfig holds the site-wide logo and contact block (singleton row)
type SiteConfig struct {
	ID             int64   `json:"-" db:"id"`
	LogoURL        *string `json:"logoUrl" db:"logo_url"`
	ContactAddress string  `json:"contactAddress" db:"contact_address"`
	ContactEmail   string  `json:"contactEmail" db:"contact_email"`
	ContactPhone   string  `json:"contactPhone" db:"contact_phone"`
}
