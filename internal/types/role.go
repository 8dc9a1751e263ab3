// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
)

// TenantRole is the closed set of membership roles, ordered by privilege:
// owner > admin > member > viewer.
type TenantRole string

const (
	RoleOwner  TenantRole = "owner"
	RoleAdmin  TenantRole = "admin"
	RoleMember TenantRole = "member"
	RoleViewer TenantRole = "viewer"
)

var ErrInvalidRole = fmt.Errorf("invalid tenant role")

// ParseTenantRole validates a raw role string. Unknown values are rejected,
// never defaulted.
func ParseTenantRole(raw string) (TenantRole, error) {
	switch TenantRole(raw) {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return TenantRole(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
	}
}

// TenantRoles lists all roles in privilege order.
func TenantRoles() []TenantRole {
	return []TenantRole{RoleOwner, RoleAdmin, RoleMember, RoleViewer}
}

func (r TenantRole) String() string {
	return string(r)
}

func (r TenantRole) Label() string {
	switch r {
	case RoleOwner:
		return "Owner"
	case RoleAdmin:
		return "Admin"
	case RoleMember:
		return "Member"
	case RoleViewer:
		return "Viewer"
	}
	return ""
}

func (r TenantRole) Description() string {
	switch r {
	case RoleOwner:
		return "Full access to all tenant features including member management and deletion"
	case RoleAdmin:
		return "Manage tenant settings and invite members"
	case RoleMember:
		return "Standard access to tenant resources"
	case RoleViewer:
		return "Read-only access to tenant resources"
	}
	return ""
}

// Permissions returns the advisory permission metadata for the role. The
// service layer enforces the capability predicates below, not this listing.
func (r TenantRole) Permissions() []string {
	switch r {
	case RoleOwner:
		return []string{
			"tenant.view",
			"tenant.update",
			"tenant.delete",
			"tenant.members.view",
			"tenant.members.invite",
			"tenant.members.update",
			"tenant.members.remove",
		}
	case RoleAdmin:
		return []string{
			"tenant.view",
			"tenant.update",
			"tenant.members.view",
			"tenant.members.invite",
			"tenant.members.update",
		}
	case RoleMember:
		return []string{
			"tenant.view",
			"tenant.members.view",
		}
	case RoleViewer:
		return []string{
			"tenant.view",
		}
	}
	return nil
}

func (r TenantRole) CanInviteMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}

func (r TenantRole) CanUpdateTenant() bool {
	return r == RoleOwner || r == RoleAdmin
}

func (r TenantRole) CanManageMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}

func (r TenantRole) CanDeleteTenant() bool {
	return r == RoleOwner
}
