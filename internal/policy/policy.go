// Package policy holds the role-based access table. It is pure data
// plus a lookup, with no knowledge of HTTP or persistence.
package policy

import "github.com/trackr-dev/trackr/internal/models"

// Operation names a guarded action on a resource kind.
type Operation string

const (
	OpProjectCreate Operation = "project:create"
	OpProjectUpdate Operation = "project:update"
	OpProjectStatus Operation = "project:status"
	OpProjectDelete Operation = "project:delete"

	OpMilestoneCreate Operation = "milestone:create"
	OpMilestoneUpdate Operation = "milestone:update"
	OpMilestoneDelete Operation = "milestone:delete"

	OpDocumentCreate Operation = "document:create"
	OpDocumentDelete Operation = "document:delete"

	OpUserList       Operation = "user:list"
	OpUserChangeRole Operation = "user:change-role"
	OpUserDelete     Operation = "user:delete"

	OpRead Operation = "read"
)

// rolePermissions is the single source of truth for authorization.
var rolePermissions = map[models.Role][]Operation{
	models.RoleAdmin: {
		OpProjectCreate, OpProjectUpdate, OpProjectStatus, OpProjectDelete,
		OpMilestoneCreate, OpMilestoneUpdate, OpMilestoneDelete,
		OpDocumentCreate, OpDocumentDelete,
		OpUserList, OpUserChangeRole, OpUserDelete,
		OpRead,
	},
	models.RolePI: {
		OpProjectCreate, OpProjectUpdate, OpProjectStatus,
		OpMilestoneCreate, OpMilestoneUpdate, OpMilestoneDelete,
		OpDocumentCreate, OpDocumentDelete,
		OpRead,
	},
	models.RoleMember: {
		OpDocumentCreate,
		OpRead,
	},
	models.RoleViewer: {
		OpRead,
	},
}

// Can reports whether the role is allowed to perform the operation.
func Can(role models.Role, op Operation) bool {
	for _, allowed := range rolePermissions[role] {
		if allowed == op {
			return true
		}
	}
	return false
}
