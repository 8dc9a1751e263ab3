// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	ASSIGNEE_RELATION = "assignee"

	SUPER_ADMIN_ROLE = "super_admin"
	ADMIN_ROLE       = "admin"

	CAN_INVITE_MEMBERS_PERMISSION = "can_invite_members"
	CAN_MANAGE_MEMBERS_PERMISSION = "can_manage_members"
	CAN_UPDATE_TENANT_PERMISSION  = "can_update_tenant"
	CAN_DELETE_TENANT_PERMISSION  = "can_delete_tenant"
	CAN_VIEW_PERMISSION           = "can_view"
)

func UserTuple(userID string) string {
	return "user:" + userID
}

func RoleTuple(role string) string {
	return "role:" + role
}

func TenantTuple(tenantID string) string {
	return "tenant:" + tenantID
}
