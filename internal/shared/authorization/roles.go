package authorization

// Role identifies the kind of principal making a request.
type Role string

const (
	// RoleIP is an information/incident provider: submits field reports.
	RoleIP Role = "ip"
	// RoleSP is a service provider: a responder organization.
	RoleSP Role = "sp"
	// RoleAdmin is the administrative role.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleIP || r == RoleSP || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole parses a role string; ok is false for unknown roles.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
