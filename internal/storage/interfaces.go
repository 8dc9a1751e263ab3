// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/sekeco/iam-service/internal/types"
)

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
	// CountOwnersForUpdate locks the tenant's owner rows until the enclosing
	// transaction ends, serializing concurrent demotions and removals.
	CountOwnersForUpdate(ctx context.Context, tenantID string) (int, error)

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	UpdateInvitation(ctx context.Context, inv *types.Invitation) error
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error)
	GetUndecidedInvitation(ctx context.Context, tenantID, email string) (*types.Invitation, error)
	ListPendingInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error)
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	ListExpiredInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error)
	ListExpiredInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id string, at time.Time) error
	MarkInvitationRejected(ctx context.Context, id string, at time.Time) error
	DeleteInvitation(ctx context.Context, id string) error
	DeleteExpiredInvitations(ctx context.Context) (int64, error)
}
