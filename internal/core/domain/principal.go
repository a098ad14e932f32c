package domain

import "slices"

// Roles recognised by the marketplace.
const (
	RoleAdvertiser  = "advertiser"
	RoleDistributor = "distributor"
	RoleAdmin       = "admin"
)

// Principal is the authenticated caller as asserted by the identity
// gateway in front of this service. The engine trusts it without
// re-verifying credentials.
type Principal struct {
	UserID int64
	Email  string
	Roles  []string
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}
