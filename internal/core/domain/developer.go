package domain

import "time"

// Developer is a real-estate development company whose compounds and
// properties are listed on the platform.
type Developer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	ReferenceNumber int       `json:"reference_number"`
	Logo            string    `json:"logo"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	WebsiteURL      string    `json:"website_url"`
	UserID          string    `json:"user_id"`
	IsDeleted       bool      `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
