// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/sekeco/iam-service/internal/storage"
	"github.com/sekeco/iam-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_invitations.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	db       *MockDBInterface
	authz    *MockAuthzInterface
	kratos   *MockKratosClientInterface
	notifier *MockNotifierInterface
	audit    *MockAuditLoggerInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		db:       NewMockDBInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		kratos:   NewMockKratosClientInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		audit:    NewMockAuditLoggerInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}
}

func (m *serviceMocks) service(enforceActive bool) *Service {
	return NewService(m.storage, m.db, m.authz, m.kratos, m.notifier, m.audit, "168h", enforceActive, m.tracer, m.monitor, m.logger)
}

func (m *serviceMocks) expectSpan(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func (m *serviceMocks) expectTx() {
	m.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestService_Invite(t *testing.T) {
	tenantID := "tenant-1"
	inviterID := "user-owner"
	email := "invitee@example.com"
	tenant := &types.Tenant{ID: tenantID, Name: "Acme", IsActive: true}
	ownerMembership := &types.Membership{TenantID: tenantID, UserID: inviterID, Role: types.RoleOwner}

	testCases := []struct {
		name          string
		role          types.TenantRole
		enforceActive bool
		setupMocks    func(*serviceMocks)
		expectedErr   error
	}{
		{
			name: "success - new invitation",
			role: types.RoleMember,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, inviterID).Return(ownerMembership, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(tenant, nil)
				m.expectTx()
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", nil)
				m.storage.EXPECT().GetUndecidedInvitation(gomock.Any(), tenantID, email).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if len(inv.Token) != tokenLength {
							t.Errorf("expected %d-char token, got %d", tokenLength, len(inv.Token))
						}
						if inv.Role != types.RoleMember {
							t.Errorf("expected role member, got %s", inv.Role)
						}
						inv.ID = "inv-1"
						return inv, nil
					},
				)
				m.notifier.EXPECT().SendInvitation(gomock.Any(), tenant, gomock.Any()).Return(nil)
				m.audit.EXPECT().InvitationIssued(tenantID, email)
			},
		},
		{
			name: "success - pending invitation refreshed in place",
			role: types.RoleAdmin,
			setupMocks: func(m *serviceMocks) {
				pending := &types.Invitation{
					ID:        "inv-1",
					TenantID:  tenantID,
					InvitedBy: "someone-else",
					Email:     email,
					Role:      types.RoleMember,
					Token:     "old-token",
					ExpiresAt: time.Now().Add(time.Hour),
				}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, inviterID).Return(ownerMembership, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(tenant, nil)
				m.expectTx()
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", nil)
				m.storage.EXPECT().GetUndecidedInvitation(gomock.Any(), tenantID, email).Return(pending, nil)
				m.storage.EXPECT().UpdateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) error {
						if inv.ID != "inv-1" {
							t.Errorf("expected refresh of existing row, got %s", inv.ID)
						}
						if inv.Token == "old-token" {
							t.Error("expected a fresh token on re-invite")
						}
						if inv.Role != types.RoleAdmin {
							t.Errorf("expected latest role to win, got %s", inv.Role)
						}
						if inv.InvitedBy != inviterID {
							t.Errorf("expected latest inviter to win, got %s", inv.InvitedBy)
						}
						if !inv.ExpiresAt.After(time.Now().Add(167 * time.Hour)) {
							t.Error("expected expiry pushed out by the configured lifetime")
						}
						return nil
					},
				)
				m.notifier.EXPECT().SendInvitation(gomock.Any(), tenant, gomock.Any()).Return(nil)
				m.audit.EXPECT().InvitationIssued(tenantID, email)
			},
		},
		{
			name: "success - expired undecided invitation reused, not recreated",
			role: types.RoleMember,
			setupMocks: func(m *serviceMocks) {
				// The unique index still covers this row, a fresh insert
				// would collide with it.
				expired := &types.Invitation{
					ID:        "inv-1",
					TenantID:  tenantID,
					InvitedBy: "someone-else",
					Email:     email,
					Role:      types.RoleMember,
					Token:     "old-token",
					ExpiresAt: time.Now().Add(-24 * time.Hour),
				}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, inviterID).Return(ownerMembership, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(tenant, nil)
				m.expectTx()
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", nil)
				m.storage.EXPECT().GetUndecidedInvitation(gomock.Any(), tenantID, email).Return(expired, nil)
				m.storage.EXPECT().UpdateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) error {
						if inv.ID != "inv-1" {
							t.Errorf("expected the expired row to be refreshed, got %s", inv.ID)
						}
						if !inv.ExpiresAt.After(time.Now()) {
							t.Error("expected a future expiry after refresh")
						}
						return nil
					},
				)
				m.notifier.EXPECT().SendInvitation(gomock.Any(), tenant, gomock.Any()).Return(nil)
				m.audit.EXPECT().InvitationIssued(tenantID, email)
			},
		},
		{
			name: "error - inviter is not a member",
			role: types.RoleMember,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, inviterID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotAllowed,
		},
		{
			name: "error - viewer cannot invite",
			role: types.RoleMember,
			setupMocks: func(m *serviceMocks) {
				viewer := &types.Membership{TenantID: tenantID, UserID: inviterID, Role: types.RoleViewer}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, inviterID).Return(viewer, nil)
			},
			expectedErr: ErrNotAllowed,
		},
		{
			name:          "error - tenant inactive with enforcement on",
			role:          types.RoleMember,
			enforceActive: true,
			setupMocks: func(m *serviceMocks) {
				inactive := &types.Tenant{ID: tenantID, Name: "Acme", IsActive: false}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, inviterID).Return(ownerMembership, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(inactive, nil)
			},
			expectedErr: ErrTenantInactive,
		},
		{
			name: "error - invitee already a member",
			role: types.RoleMember,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, inviterID).Return(ownerMembership, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(tenant, nil)
				m.expectTx()
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("identity-9", nil)
				existing := &types.Membership{TenantID: tenantID, UserID: "identity-9", Role: types.RoleMember}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, "identity-9").Return(existing, nil)
			},
			expectedErr: ErrAlreadyMember,
		},
		{
			name: "mail failure does not fail the invite",
			role: types.RoleMember,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, inviterID).Return(ownerMembership, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(tenant, nil)
				m.expectTx()
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", nil)
				m.storage.EXPECT().GetUndecidedInvitation(gomock.Any(), tenantID, email).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						inv.ID = "inv-1"
						return inv, nil
					},
				)
				m.notifier.EXPECT().SendInvitation(gomock.Any(), tenant, gomock.Any()).Return(errors.New("smtp down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
				m.audit.EXPECT().InvitationIssued(tenantID, email)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("invitations.Service.Invite")
			tc.setupMocks(m)

			s := m.service(tc.enforceActive)
			invitation, err := s.Invite(context.Background(), tenantID, inviterID, email, tc.role)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invitation == nil {
				t.Fatal("expected an invitation")
			}
		})
	}
}

func TestService_Accept(t *testing.T) {
	tenantID := "tenant-1"
	userID := "user-9"
	email := "invitee@example.com"
	token := "valid-token"

	pending := func() *types.Invitation {
		return &types.Invitation{
			ID:        "inv-1",
			TenantID:  tenantID,
			InvitedBy: "user-owner",
			Email:     email,
			Role:      types.RoleMember,
			Token:     token,
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now().Add(-time.Hour),
		}
	}

	testCases := []struct {
		name        string
		email       string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:  "success - membership attached and invitation consumed",
			email: email,
			setupMocks: func(m *serviceMocks) {
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pending(), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, userID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mem *types.Membership) (*types.Membership, error) {
						if mem.Role != types.RoleMember {
							t.Errorf("expected invited role, got %s", mem.Role)
						}
						if mem.JoinedAt == nil {
							t.Error("expected joined_at to be set")
						}
						mem.ID = "mem-1"
						return mem, nil
					},
				)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(nil)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), tenantID, userID, types.RoleMember).Return(nil)
			},
		},
		{
			name:  "case-insensitive email match",
			email: "Invitee@Example.COM",
			setupMocks: func(m *serviceMocks) {
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pending(), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, userID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mem *types.Membership) (*types.Membership, error) {
						mem.ID = "mem-1"
						return mem, nil
					},
				)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(nil)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), tenantID, userID, types.RoleMember).Return(nil)
			},
		},
		{
			name:  "already a member - invitation consumed without a second membership",
			email: email,
			setupMocks: func(m *serviceMocks) {
				existing := &types.Membership{ID: "mem-0", TenantID: tenantID, UserID: userID, Role: types.RoleAdmin}
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pending(), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, userID).Return(existing, nil)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(nil)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), tenantID, userID, types.RoleAdmin).Return(nil)
			},
		},
		{
			name:  "error - unknown token",
			email: email,
			setupMocks: func(m *serviceMocks) {
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name:  "error - expired invitation",
			email: email,
			setupMocks: func(m *serviceMocks) {
				expired := pending()
				expired.ExpiresAt = time.Now().Add(-time.Minute)
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(expired, nil)
			},
			expectedErr: ErrInvitationNotPending,
		},
		{
			name:  "error - already rejected",
			email: email,
			setupMocks: func(m *serviceMocks) {
				rejected := pending()
				now := time.Now()
				rejected.RejectedAt = &now
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(rejected, nil)
			},
			expectedErr: ErrInvitationNotPending,
		},
		{
			name:  "error - different email",
			email: "someone-else@example.com",
			setupMocks: func(m *serviceMocks) {
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(pending(), nil)
			},
			expectedErr: ErrEmailMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("invitations.Service.Accept")
			tc.setupMocks(m)

			s := m.service(false)
			membership, err := s.Accept(context.Background(), token, userID, tc.email)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if membership == nil {
				t.Fatal("expected a membership")
			}
		})
	}
}

func TestService_Reject(t *testing.T) {
	token := "valid-token"
	invEmail := "invitee@example.com"

	testCases := []struct {
		name        string
		email       string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success - anonymous reject",
			setupMocks: func(m *serviceMocks) {
				inv := &types.Invitation{ID: "inv-1", Token: token, Email: invEmail, ExpiresAt: time.Now().Add(time.Hour)}
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(inv, nil)
				m.storage.EXPECT().MarkInvitationRejected(gomock.Any(), "inv-1", gomock.Any()).Return(nil)
			},
		},
		{
			name:  "success - authenticated caller with matching email",
			email: "Invitee@Example.COM",
			setupMocks: func(m *serviceMocks) {
				inv := &types.Invitation{ID: "inv-1", Token: token, Email: invEmail, ExpiresAt: time.Now().Add(time.Hour)}
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(inv, nil)
				m.storage.EXPECT().MarkInvitationRejected(gomock.Any(), "inv-1", gomock.Any()).Return(nil)
			},
		},
		{
			name:  "error - authenticated caller with a different email",
			email: "someone-else@example.com",
			setupMocks: func(m *serviceMocks) {
				inv := &types.Invitation{ID: "inv-1", Token: token, Email: invEmail, ExpiresAt: time.Now().Add(time.Hour)}
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(inv, nil)
			},
			expectedErr: ErrEmailMismatch,
		},
		{
			name: "error - unknown token",
			setupMocks: func(m *serviceMocks) {
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name: "error - already accepted",
			setupMocks: func(m *serviceMocks) {
				now := time.Now()
				inv := &types.Invitation{ID: "inv-1", Token: token, Email: invEmail, ExpiresAt: now.Add(time.Hour), AcceptedAt: &now}
				m.expectTx()
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(inv, nil)
			},
			expectedErr: ErrInvitationNotPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("invitations.Service.Reject")
			tc.setupMocks(m)

			err := m.service(false).Reject(context.Background(), token, tc.email)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Cancel(t *testing.T) {
	tenantID := "tenant-1"
	callerID := "user-admin"
	adminMembership := &types.Membership{TenantID: tenantID, UserID: callerID, Role: types.RoleAdmin}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				inv := &types.Invitation{ID: "inv-1", TenantID: tenantID, ExpiresAt: time.Now().Add(time.Hour)}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(adminMembership, nil)
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(inv, nil)
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)
			},
		},
		{
			name: "error - viewer cannot cancel",
			setupMocks: func(m *serviceMocks) {
				viewer := &types.Membership{TenantID: tenantID, UserID: callerID, Role: types.RoleViewer}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(viewer, nil)
			},
			expectedErr: ErrNotAllowed,
		},
		{
			name: "error - invitation belongs to another tenant",
			setupMocks: func(m *serviceMocks) {
				inv := &types.Invitation{ID: "inv-1", TenantID: "other-tenant", ExpiresAt: time.Now().Add(time.Hour)}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(adminMembership, nil)
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(inv, nil)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name: "error - accepted invitation is not cancellable",
			setupMocks: func(m *serviceMocks) {
				now := time.Now()
				inv := &types.Invitation{ID: "inv-1", TenantID: tenantID, ExpiresAt: now.Add(time.Hour), AcceptedAt: &now}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(adminMembership, nil)
				m.storage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(inv, nil)
			},
			expectedErr: ErrInvitationNotPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("invitations.Service.Cancel")
			tc.setupMocks(m)

			err := m.service(false).Cancel(context.Background(), tenantID, "inv-1", callerID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListExpiredByTenant(t *testing.T) {
	tenantID := "tenant-1"
	callerID := "user-admin"
	adminMembership := &types.Membership{TenantID: tenantID, UserID: callerID, Role: types.RoleAdmin}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				expired := []*types.Invitation{
					{ID: "inv-1", TenantID: tenantID, ExpiresAt: time.Now().Add(-time.Hour)},
				}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(adminMembership, nil)
				m.storage.EXPECT().ListExpiredInvitationsByTenantID(gomock.Any(), tenantID).Return(expired, nil)
			},
		},
		{
			name: "error - viewer cannot list",
			setupMocks: func(m *serviceMocks) {
				viewer := &types.Membership{TenantID: tenantID, UserID: callerID, Role: types.RoleViewer}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(viewer, nil)
			},
			expectedErr: ErrNotAllowed,
		},
		{
			name: "error - non-member",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("invitations.Service.ListExpiredByTenant")
			tc.setupMocks(m)

			invs, err := m.service(false).ListExpiredByTenant(context.Background(), tenantID, callerID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(invs) != 1 {
				t.Fatalf("expected 1 invitation, got %d", len(invs))
			}
		})
	}
}

func TestService_CleanupExpired(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name          string
		setupMocks    func(*serviceMocks)
		expectedCount int64
		expectedErr   error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().DeleteExpiredInvitations(gomock.Any()).Return(int64(3), nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedCount: 3,
		},
		{
			name: "nothing to clean",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().DeleteExpiredInvitations(gomock.Any()).Return(int64(0), nil)
			},
		},
		{
			name: "storage error",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().DeleteExpiredInvitations(gomock.Any()).Return(int64(0), dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.expectSpan("invitations.Service.CleanupExpired")
			tc.setupMocks(m)

			count, err := m.service(false).CleanupExpired(context.Background())

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if count != tc.expectedCount {
				t.Errorf("expected %d deleted, got %d", tc.expectedCount, count)
			}
		})
	}
}
