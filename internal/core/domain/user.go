package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an authenticated actor in the system. CompanyID is optional:
// public-flow users may not belong to any company, but the policy-gated
// endpoints require it.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CompanyID    string    `json:"company_id,omitempty"`
	IsDeleted    bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims is the identity decoded from a verified session token. Derived per
// request, never persisted.
type Claims struct {
	UserID    string
	Name      string
	Username  string
	Role      string
	CompanyID string
}
