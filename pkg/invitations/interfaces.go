// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"time"

	"github.com/sekeco/iam-service/internal/types"
)

type ServiceInterface interface {
	Invite(ctx context.Context, tenantID, inviterID, email string, role types.TenantRole) (*types.Invitation, error)
	Accept(ctx context.Context, token, userID, email string) (*types.Membership, error)
	Reject(ctx context.Context, token, email string) error
	Cancel(ctx context.Context, tenantID, invitationID, callerID string) error
	ListPendingByTenant(ctx context.Context, tenantID, callerID string) ([]*types.Invitation, error)
	ListPendingByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	ListExpiredByTenant(ctx context.Context, tenantID, callerID string) ([]*types.Invitation, error)
	ListExpiredByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	CleanupExpired(ctx context.Context) (int64, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error)
	AddMember(ctx context.Context, m *types.Membership) (*types.Membership, error)

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

// DBInterface exposes the transaction boundary the service runs its
// multi-statement flows under.
type DBInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthzInterface interface {
	AssignTenantRole(ctx context.Context, tenantID, userID string, role types.TenantRole) error
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
}

type NotifierInterface interface {
	SendInvitation(ctx context.Context, tenant *types.Tenant, invitation *types.Invitation) error
}

// AuditLoggerInterface records security-relevant invitation events.
type AuditLoggerInterface interface {
	InvitationIssued(tenantID, email string)
}
