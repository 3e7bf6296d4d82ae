package constant

// Role is the coarse privilege level derived from Identity.RoleID.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleProvider Role = "provider"
	RoleClient   Role = "client"
)

// DefaultRole applies when no identity is present.
const DefaultRole = RoleClient

// Canonical role_id mapping: 1=admin, 2=provider, 3=client.
var roleByID = map[int]Role{
	1: RoleAdmin,
	2: RoleProvider,
	3: RoleClient,
}

// RoleFromID derives a Role from a backend role_id. Unknown ids fall back
// to the default role.
func RoleFromID(id int) Role {
	if r, ok := roleByID[id]; ok {
		return r
	}
	return DefaultRole
}

// AllRoles returns every known role, the default allowed set for guards.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleProvider, RoleClient}
}
