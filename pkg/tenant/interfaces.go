// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/sekeco/iam-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, name, slug string, creatorID string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, callerID string, tenant *types.Tenant, paths []string) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, callerID, id string, active bool) error
	DeleteTenant(ctx context.Context, callerID, id string) error

	ListTenantUsers(ctx context.Context, tenantID, callerID string) ([]*types.TenantUser, error)
	GetRoleInTenant(ctx context.Context, tenantID, userID string) (types.TenantRole, error)
	HasRoleInTenant(ctx context.Context, tenantID, userID string, role types.TenantRole) (bool, error)
	IsOwnerOfTenant(ctx context.Context, tenantID, userID string) (bool, error)
	CanManageMembersInTenant(ctx context.Context, tenantID, userID string) (bool, error)
	UpdateMemberRole(ctx context.Context, tenantID, callerID, userID string, role types.TenantRole) error
	RemoveMember(ctx context.Context, tenantID, callerID, userID string) error
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	SetTenantStatus(ctx context.Context, id string, active bool) error
	DeleteTenant(ctx context.Context, id string) error

	AddMember(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.TenantRole) error
	RemoveMember(ctx context.Context, tenantID, userID string) error
	CountOwnersForUpdate(ctx context.Context, tenantID string) (int, error)
}

type DBInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthzInterface interface {
	AssignTenantRole(ctx context.Context, tenantID, userID string, role types.TenantRole) error
	RemoveTenantRole(ctx context.Context, tenantID, userID string, role types.TenantRole) error
}

type KratosClientInterface interface {
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}
