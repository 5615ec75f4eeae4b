package domain

import "errors"

// Auth / authorization errors.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbidden            = errors.New("access forbidden")
	ErrNoPolicyForRole      = errors.New("no policy found for this role")
	ErrMenuItemNotPermitted = errors.New("menu item not permitted")
)

// Entity lookup errors.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDeveloperNotFound = errors.New("developer not found")
	ErrCompoundNotFound  = errors.New("compound not found")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrPolicyNotFound    = errors.New("user policy not found")
)

// Business-rule conflicts. All surface as 400, matching the API contract.
var (
	ErrUserExists      = errors.New("username already exists")
	ErrDeveloperExists = errors.New("developer already exists")
	ErrCompoundExists  = errors.New("compound already exists")
	ErrPropertyExists  = errors.New("property already exists")
	ErrPolicyExists    = errors.New("user policy already exists")
	ErrBookingExists   = errors.New("booking already exists for this property")
	ErrPriceMismatch   = errors.New("property price does not match")
)
