package models

import "strings"

// Permission is the ordered authorization tier a membership grants
// inside a channel. Tiers are compared numerically, so Admin implies
// Write and Write implies Read.
type Permission int

const (
	PermissionRead  Permission = 1
	PermissionWrite Permission = 2
	PermissionAdmin Permission = 3
)

// Meets reports whether the tier satisfies an "at least required" check.
func (p Permission) Meets(required Permission) bool {
	return p >= required
}

func (p Permission) Valid() bool {
	return p >= PermissionRead && p <= PermissionAdmin
}

func (p Permission) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionWrite:
		return "write"
	case PermissionAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// ParsePermission maps the wire representation of a tier back to its
// ordinal. The second return is false for unknown names.
func ParsePermission(s string) (Permission, bool) {
	switch strings.ToLower(s) {
	case "read":
		return PermissionRead, true
	case "write":
		return PermissionWrite, true
	case "admin":
		return PermissionAdmin, true
	default:
		return 0, false
	}
}
