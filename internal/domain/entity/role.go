package entity

// Role is the two-tier authorization flag stored on a user record. It is a
// binary flag, not a permission set: 0 is a regular shopper, 1 is an admin.
type Role int

const (
	// RoleUser marks a regular account.
	RoleUser Role = 0

	// RoleAdmin is the admin sentinel. Authorization checks compare against
	// this value with strict equality; any other value, including out-of-range
	// positives, is not an admin.
	RoleAdmin Role = 1
)

// IsAdmin reports whether the role is exactly the admin sentinel.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
