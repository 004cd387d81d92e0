package miit

// Role is a user's role identifier as stored in the roles table.
type Role int

const (
	// RoleAdministrator manages users and master data
	RoleAdministrator Role = 1
	// RoleSupervisor reviews movements and weighings
	RoleSupervisor Role = 2
	// RoleOperator records day to day terminal operations
	RoleOperator Role = 3
	// RoleSuperUser is the elevated, non-database-backed identity
	RoleSuperUser Role = 4
)

// Role names as they appear in the roles table and inside token claims.
const (
	RoleNameAdministrator = "Administrador"
	RoleNameSupervisor    = "Supervisor"
	RoleNameOperator      = "Operador"
	RoleNameSuperUser     = "SuperAdministrador"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleSupervisor, RoleOperator, RoleSuperUser:
		return true
	default:
		return false
	}
}

// Name returns the display name carried in the role claim.
func (r Role) Name() string {
	switch r {
	case RoleAdministrator:
		return RoleNameAdministrator
	case RoleSupervisor:
		return RoleNameSupervisor
	case RoleOperator:
		return RoleNameOperator
	case RoleSuperUser:
		return RoleNameSuperUser
	default:
		return ""
	}
}

// GetAllRoles returns all predefined roles in identifier order
func GetAllRoles() []Role {
	return []Role{
		RoleAdministrator,
		RoleSupervisor,
		RoleOperator,
		RoleSuperUser,
	}
}

// ParseRole safely resolves a role name into a Role identifier
func ParseRole(name string) (Role, bool) {
	for _, r := range GetAllRoles() {
		if r.Name() == name {
			return r, true
		}
	}
	return 0, false
}
