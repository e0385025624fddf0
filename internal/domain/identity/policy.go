package identity

import "github.com/producao/backend/internal/domain/tracking"

// Action is an operation attempted against an entity class
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AuditEntity is the entity class guarding the audit-trail read API.
// Only listed here; mutations on the trail are not routable at all.
const AuditEntity = "audit"

type policyKey struct {
	entity string
	action Action
}

// policyTable is the single source of truth for role-based access:
// entity class × action → allowed roles. Routes consult it through Allowed;
// there are no per-route ad hoc checks.
var policyTable = map[policyKey][]Role{}

func grant(entity string, action Action, roles ...Role) {
	policyTable[policyKey{entity, action}] = roles
}

func init() {
	supervisors := []Role{RoleAdmin, RoleSupervisorProducao, RoleSupervisorQualidade}
	floor := append([]Role{RoleLiderProducao}, supervisors...)
	everyone := append([]Role{RoleEspectador}, floor...)

	for _, entity := range []string{
		tracking.EntityAbsenteeism,
		tracking.EntityLoss,
		tracking.EntityError,
		tracking.EntityProduction,
		tracking.EntityMaintenance,
	} {
		grant(entity, ActionRead, everyone...)
		grant(entity, ActionDelete, supervisors...)
	}

	// Production-floor leads may register day-to-day records but not
	// maintenance or error reports, and never delete.
	for _, entity := range []string{
		tracking.EntityAbsenteeism,
		tracking.EntityLoss,
		tracking.EntityProduction,
	} {
		grant(entity, ActionCreate, floor...)
		grant(entity, ActionUpdate, floor...)
	}
	for _, entity := range []string{tracking.EntityError, tracking.EntityMaintenance} {
		grant(entity, ActionCreate, supervisors...)
		grant(entity, ActionUpdate, supervisors...)
	}

	grant(AuditEntity, ActionRead, RoleAdmin)
}

// Allowed decides whether a role may perform an action on an entity class.
// Unknown entity/action pairs deny by default.
func Allowed(role Role, entity string, action Action) bool {
	for _, allowed := range policyTable[policyKey{entity, action}] {
		if allowed == role {
			return true
		}
	}
	return false
}
