package identity

// Role is the access level assigned to a user. Roles are a fixed set; the
// authorization policy table maps them to per-entity actions.
type Role string

const (
	RoleAdmin               Role = "ADMIN"
	RoleSupervisorProducao  Role = "SUPERVISOR_PRODUCAO"
	RoleSupervisorQualidade Role = "SUPERVISOR_QUALIDADE"
	RoleLiderProducao       Role = "LIDER_PRODUCAO"
	RoleEspectador          Role = "ESPECTADOR"
)

// ValidRoles lists every assignable role
var ValidRoles = []Role{
	RoleAdmin,
	RoleSupervisorProducao,
	RoleSupervisorQualidade,
	RoleLiderProducao,
	RoleEspectador,
}

// ParseRole resolves a role name, reporting whether it is known
func ParseRole(s string) (Role, bool) {
	for _, r := range ValidRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}
