package domain

// Role is the single organisation-wide role held by a user profile.
type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleManager       Role = "MANAGER"
	RoleMiddleManager Role = "MIDDLE_MANAGER"
	RolePersonnel     Role = "PERSONNEL"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMiddleManager, RolePersonnel:
		return true
	}
	return false
}

// Capability names an action that a role may or may not perform.
type Capability string

const (
	CapManageOrders     Capability = "manage_orders"
	CapManageWorkItems  Capability = "manage_work_items"
	CapApproveUpdates   Capability = "approve_updates"
	CapDeleteAttachment Capability = "delete_attachments"
	CapRevertStatus     Capability = "revert_status"
	CapViewAudit        Capability = "view_audit"
	CapCloneOrders      Capability = "clone_orders"
	CapManageUsers      Capability = "manage_users"
)

// AllCapabilities lists every capability in a stable order.
var AllCapabilities = []Capability{
	CapManageOrders,
	CapManageWorkItems,
	CapApproveUpdates,
	CapDeleteAttachment,
	CapRevertStatus,
	CapViewAudit,
	CapCloneOrders,
	CapManageUsers,
}

var capabilityRoles = map[Capability][]Role{
	CapManageOrders:     {RoleAdmin, RoleManager, RoleMiddleManager},
	CapManageWorkItems:  {RoleAdmin, RoleManager, RoleMiddleManager},
	CapApproveUpdates:   {RoleAdmin, RoleManager, RoleMiddleManager},
	CapDeleteAttachment: {RoleAdmin, RoleManager},
	CapRevertStatus:     {RoleAdmin, RoleManager},
	CapViewAudit:        {RoleAdmin, RoleManager},
	CapCloneOrders:      {RoleAdmin, RoleManager},
	CapManageUsers:      {RoleAdmin},
}

// RoleHasCapability is the single source of truth for role permissions.
func RoleHasCapability(role Role, capability Capability) bool {
	for _, r := range capabilityRoles[capability] {
		if r == role {
			return true
		}
	}
	return false
}

// CapabilitiesOf returns every capability granted to role.
func CapabilitiesOf(role Role) []Capability {
	caps := make([]Capability, 0, len(AllCapabilities))
	for _, c := range AllCapabilities {
		if RoleHasCapability(role, c) {
			caps = append(caps, c)
		}
	}
	return caps
}

func CanManageOrders(role Role) bool      { return RoleHasCapability(role, CapManageOrders) }
func CanManageWorkItems(role Role) bool   { return RoleHasCapability(role, CapManageWorkItems) }
func CanApproveUpdates(role Role) bool    { return RoleHasCapability(role, CapApproveUpdates) }
func CanDeleteAttachments(role Role) bool { return RoleHasCapability(role, CapDeleteAttachment) }
func CanRevertStatus(role Role) bool      { return RoleHasCapability(role, CapRevertStatus) }
func CanViewAudit(role Role) bool         { return RoleHasCapability(role, CapViewAudit) }
