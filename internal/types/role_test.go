// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"slices"
	"testing"
)

func TestParseTenantRole(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expected    TenantRole
		expectedErr bool
	}{
		{name: "owner", raw: "owner", expected: RoleOwner},
		{name: "admin", raw: "admin", expected: RoleAdmin},
		{name: "member", raw: "member", expected: RoleMember},
		{name: "viewer", raw: "viewer", expected: RoleViewer},
		{name: "empty", raw: "", expectedErr: true},
		{name: "unknown", raw: "superadmin", expectedErr: true},
		{name: "case sensitive", raw: "Owner", expectedErr: true},
		{name: "whitespace", raw: " owner", expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := ParseTenantRole(tc.raw)

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, ErrInvalidRole) {
					t.Errorf("expected ErrInvalidRole, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tc.expected {
				t.Errorf("expected role %q, got %q", tc.expected, role)
			}
		})
	}
}

func TestTenantRoleCapabilities(t *testing.T) {
	testCases := []struct {
		role            TenantRole
		canInvite       bool
		canManage       bool
		canDeleteTenant bool
	}{
		{RoleOwner, true, true, true},
		{RoleAdmin, true, true, false},
		{RoleMember, false, false, false},
		{RoleViewer, false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.role.String(), func(t *testing.T) {
			if got := tc.role.CanInviteMembers(); got != tc.canInvite {
				t.Errorf("CanInviteMembers: expected %v, got %v", tc.canInvite, got)
			}
			if got := tc.role.CanManageMembers(); got != tc.canManage {
				t.Errorf("CanManageMembers: expected %v, got %v", tc.canManage, got)
			}
			if got := tc.role.CanDeleteTenant(); got != tc.canDeleteTenant {
				t.Errorf("CanDeleteTenant: expected %v, got %v", tc.canDeleteTenant, got)
			}
		})
	}
}

func TestTenantRoleMetadata(t *testing.T) {
	for _, role := range TenantRoles() {
		if role.Label() == "" {
			t.Errorf("role %q has no label", role)
		}
		if role.Description() == "" {
			t.Errorf("role %q has no description", role)
		}
		if len(role.Permissions()) == 0 {
			t.Errorf("role %q has no permissions", role)
		}
	}

	// privilege ordering implies permission subsets shrink down the ladder
	roles := TenantRoles()
	for i := 1; i < len(roles); i++ {
		if len(roles[i].Permissions()) >= len(roles[i-1].Permissions()) {
			t.Errorf("expected %q to carry fewer permissions than %q", roles[i], roles[i-1])
		}
	}

	if !slices.Contains(RoleOwner.Permissions(), "tenant.delete") {
		t.Error("owner must carry tenant.delete")
	}
	if slices.Contains(RoleAdmin.Permissions(), "tenant.delete") {
		t.Error("admin must not carry tenant.delete")
	}
}
