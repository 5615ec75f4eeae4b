package domain

import "time"

// MenuItem is the unit of access-control granularity: an enumerated
// application area a role may or may not be allowed to use.
type MenuItem string

const (
	MenuDashboard  MenuItem = "dashboard"
	MenuUsers      MenuItem = "users"
	MenuProperties MenuItem = "properties"
	MenuCompounds  MenuItem = "compounds"
	MenuDevelopers MenuItem = "developers"
	MenuBookings   MenuItem = "bookings"
	MenuPolicies   MenuItem = "policies"
)

// AllMenuItems lists every valid menu item, in display order.
var AllMenuItems = []MenuItem{
	MenuDashboard,
	MenuUsers,
	MenuProperties,
	MenuCompounds,
	MenuDevelopers,
	MenuBookings,
	MenuPolicies,
}

// ValidMenuItem reports whether s names a known menu item.
func ValidMenuItem(s string) bool {
	for _, m := range AllMenuItems {
		if string(m) == s {
			return true
		}
	}
	return false
}

// UserPolicy maps a (role, company) pair to the set of menu items that role
// is permitted to use. Invariant: at most one non-deleted policy exists per
// (role, company) pair.
type UserPolicy struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"`
	CompanyID string     `json:"company_id"`
	MenuItems []MenuItem `json:"menu_items"`
	IsDeleted bool       `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Permits reports whether the policy grants access to item.
func (p *UserPolicy) Permits(item MenuItem) bool {
	for _, m := range p.MenuItems {
		if m == item {
			return true
		}
	}
	return false
}
