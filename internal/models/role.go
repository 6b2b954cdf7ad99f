package models

// Role determines what a user is allowed to do.
// ADMIN has full system access, PI manages projects,
// MEMBER can upload documents, VIEWER is read-only.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RolePI     Role = "PI"
	RoleMember Role = "MEMBER"
	RoleViewer Role = "VIEWER"
)

// ParseRole maps a raw string onto a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RolePI, RoleMember, RoleViewer:
		return Role(s), true
	}
	return "", false
}
