// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/sekeco/iam-service/internal/storage"
	"github.com/sekeco/iam-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type tenantMocks struct {
	storage *MockStorageInterface
	db      *MockDBInterface
	authz   *MockAuthzInterface
	kratos  *MockKratosClientInterface
	tracer  *MockTracingInterface
	monitor *MockMonitorInterface
	logger  *MockLoggerInterface
}

func newTenantMocks(ctrl *gomock.Controller) *tenantMocks {
	return &tenantMocks{
		storage: NewMockStorageInterface(ctrl),
		db:      NewMockDBInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
		kratos:  NewMockKratosClientInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}
}

func (m *tenantMocks) service() *Service {
	return NewService(m.storage, m.db, m.authz, m.kratos, m.tracer, m.monitor, m.logger)
}

func (m *tenantMocks) expectSpan(name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func (m *tenantMocks) expectTx() {
	m.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestService_CreateTenant(t *testing.T) {
	creatorID := "user-1"

	testCases := []struct {
		name        string
		slug        string
		setupMocks  func(*tenantMocks)
		expectedErr error
	}{
		{
			name: "success - slug derived from name",
			setupMocks: func(m *tenantMocks) {
				m.expectTx()
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tn *types.Tenant) (*types.Tenant, error) {
						if tn.Slug != "acme-corp" {
							t.Errorf("expected derived slug acme-corp, got %q", tn.Slug)
						}
						if !tn.IsActive {
							t.Error("expected new tenant to be active")
						}
						tn.ID = "tenant-1"
						return tn, nil
					},
				)
				m.storage.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mem *types.Membership) (*types.Membership, error) {
						if mem.Role != types.RoleOwner {
							t.Errorf("expected creator to become owner, got %s", mem.Role)
						}
						return mem, nil
					},
				)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), "tenant-1", creatorID, types.RoleOwner).Return(nil)
			},
		},
		{
			name: "error - slug collision",
			slug: "acme-corp",
			setupMocks: func(m *tenantMocks) {
				m.expectTx()
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrSlugTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTenantMocks(ctrl)
			m.expectSpan("tenant.Service.CreateTenant")
			tc.setupMocks(m)

			tenant, err := m.service().CreateTenant(context.Background(), "Acme Corp!", tc.slug, creatorID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tenant == nil {
				t.Fatal("expected a tenant")
			}
		})
	}
}

func TestService_UpdateMemberRole(t *testing.T) {
	tenantID := "tenant-1"
	callerID := "user-admin"
	targetID := "user-owner"
	admin := &types.Membership{TenantID: tenantID, UserID: callerID, Role: types.RoleAdmin}

	testCases := []struct {
		name        string
		role        types.TenantRole
		setupMocks  func(*tenantMocks)
		expectedErr error
	}{
		{
			name: "success - owner demoted while another owner remains",
			role: types.RoleMember,
			setupMocks: func(m *tenantMocks) {
				owner := &types.Membership{TenantID: tenantID, UserID: targetID, Role: types.RoleOwner}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(admin, nil)
				m.expectTx()
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, targetID).Return(owner, nil)
				m.storage.EXPECT().CountOwnersForUpdate(gomock.Any(), tenantID).Return(2, nil)
				m.storage.EXPECT().UpdateMemberRole(gomock.Any(), tenantID, targetID, types.RoleMember).Return(nil)
				m.authz.EXPECT().RemoveTenantRole(gomock.Any(), tenantID, targetID, types.RoleOwner).Return(nil)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), tenantID, targetID, types.RoleMember).Return(nil)
			},
		},
		{
			name: "error - demoting the last owner",
			role: types.RoleAdmin,
			setupMocks: func(m *tenantMocks) {
				owner := &types.Membership{TenantID: tenantID, UserID: targetID, Role: types.RoleOwner}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(admin, nil)
				m.expectTx()
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, targetID).Return(owner, nil)
				m.storage.EXPECT().CountOwnersForUpdate(gomock.Any(), tenantID).Return(1, nil)
			},
			expectedErr: ErrLastOwner,
		},
		{
			name: "promoting to owner skips the owner count",
			role: types.RoleOwner,
			setupMocks: func(m *tenantMocks) {
				member := &types.Membership{TenantID: tenantID, UserID: targetID, Role: types.RoleMember}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(admin, nil)
				m.expectTx()
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, targetID).Return(member, nil)
				m.storage.EXPECT().UpdateMemberRole(gomock.Any(), tenantID, targetID, types.RoleOwner).Return(nil)
				m.authz.EXPECT().RemoveTenantRole(gomock.Any(), tenantID, targetID, types.RoleMember).Return(nil)
				m.authz.EXPECT().AssignTenantRole(gomock.Any(), tenantID, targetID, types.RoleOwner).Return(nil)
			},
		},
		{
			name: "same role is a no-op",
			role: types.RoleMember,
			setupMocks: func(m *tenantMocks) {
				member := &types.Membership{TenantID: tenantID, UserID: targetID, Role: types.RoleMember}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(admin, nil)
				m.expectTx()
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, targetID).Return(member, nil)
			},
		},
		{
			name: "error - member cannot manage roles",
			role: types.RoleViewer,
			setupMocks: func(m *tenantMocks) {
				member := &types.Membership{TenantID: tenantID, UserID: callerID, Role: types.RoleMember}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(member, nil)
			},
			expectedErr: ErrNotAllowed,
		},
		{
			name: "error - target not a member",
			role: types.RoleMember,
			setupMocks: func(m *tenantMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(admin, nil)
				m.expectTx()
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, targetID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrMemberNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTenantMocks(ctrl)
			m.expectSpan("tenant.Service.UpdateMemberRole")
			tc.setupMocks(m)

			err := m.service().UpdateMemberRole(context.Background(), tenantID, callerID, targetID, tc.role)

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

func TestService_RemoveMember(t *testing.T) {
	tenantID := "tenant-1"
	ownerID := "user-owner"
	owner := &types.Membership{TenantID: tenantID, UserID: ownerID, Role: types.RoleOwner}

	testCases := []struct {
		name        string
		callerID    string
		targetID    string
		setupMocks  func(*tenantMocks)
		expectedErr error
	}{
		{
			name:     "success - owner removes a member",
			callerID: ownerID,
			targetID: "user-2",
			setupMocks: func(m *tenantMocks) {
				member := &types.Membership{TenantID: tenantID, UserID: "user-2", Role: types.RoleMember}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, ownerID).Return(owner, nil)
				m.expectTx()
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, "user-2").Return(member, nil)
				m.storage.EXPECT().RemoveMember(gomock.Any(), tenantID, "user-2").Return(nil)
				m.authz.EXPECT().RemoveTenantRole(gomock.Any(), tenantID, "user-2", types.RoleMember).Return(nil)
			},
		},
		{
			name:     "success - member leaves on their own",
			callerID: "user-2",
			targetID: "user-2",
			setupMocks: func(m *tenantMocks) {
				member := &types.Membership{TenantID: tenantID, UserID: "user-2", Role: types.RoleMember}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, "user-2").Return(member, nil)
				m.expectTx()
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, "user-2").Return(member, nil)
				m.storage.EXPECT().RemoveMember(gomock.Any(), tenantID, "user-2").Return(nil)
				m.authz.EXPECT().RemoveTenantRole(gomock.Any(), tenantID, "user-2", types.RoleMember).Return(nil)
			},
		},
		{
			name:     "error - last owner cannot leave",
			callerID: ownerID,
			targetID: ownerID,
			setupMocks: func(m *tenantMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, ownerID).Return(owner, nil)
				m.expectTx()
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, ownerID).Return(owner, nil)
				m.storage.EXPECT().CountOwnersForUpdate(gomock.Any(), tenantID).Return(1, nil)
			},
			expectedErr: ErrLastOwner,
		},
		{
			name:     "success - one of two owners leaves",
			callerID: ownerID,
			targetID: ownerID,
			setupMocks: func(m *tenantMocks) {
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, ownerID).Return(owner, nil)
				m.expectTx()
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, ownerID).Return(owner, nil)
				m.storage.EXPECT().CountOwnersForUpdate(gomock.Any(), tenantID).Return(2, nil)
				m.storage.EXPECT().RemoveMember(gomock.Any(), tenantID, ownerID).Return(nil)
				m.authz.EXPECT().RemoveTenantRole(gomock.Any(), tenantID, ownerID, types.RoleOwner).Return(nil)
			},
		},
		{
			name:     "error - viewer cannot remove others",
			callerID: "user-viewer",
			targetID: "user-2",
			setupMocks: func(m *tenantMocks) {
				viewer := &types.Membership{TenantID: tenantID, UserID: "user-viewer", Role: types.RoleViewer}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, "user-viewer").Return(viewer, nil)
			},
			expectedErr: ErrNotAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTenantMocks(ctrl)
			m.expectSpan("tenant.Service.RemoveMember")
			tc.setupMocks(m)

			err := m.service().RemoveMember(context.Background(), tenantID, tc.callerID, tc.targetID)

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

func TestService_ListTenantUsers(t *testing.T) {
	tenantID := "tenant-1"
	callerID := "user-1"
	caller := &types.Membership{TenantID: tenantID, UserID: callerID, Role: types.RoleViewer}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTenantMocks(ctrl)
	m.expectSpan("tenant.Service.ListTenantUsers")

	members := []*types.Membership{
		{TenantID: tenantID, UserID: "user-1", Role: types.RoleViewer},
		{TenantID: tenantID, UserID: "user-2", Role: types.RoleOwner},
	}
	m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, callerID).Return(caller, nil)
	m.storage.EXPECT().ListMembersByTenantID(gomock.Any(), tenantID).Return(members, nil)
	m.kratos.EXPECT().GetIdentityEmail(gomock.Any(), "user-1").Return("one@example.com", nil)
	m.kratos.EXPECT().GetIdentityEmail(gomock.Any(), "user-2").Return("", errors.New("identity gone"))
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())

	users, err := m.service().ListTenantUsers(context.Background(), tenantID, callerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Email != "one@example.com" {
		t.Errorf("expected resolved email, got %q", users[0].Email)
	}
	if users[1].Email != "unknown" {
		t.Errorf("expected unknown placeholder, got %q", users[1].Email)
	}
}

func TestService_HasRoleInTenant(t *testing.T) {
	tenantID := "tenant-1"
	userID := "user-1"

	testCases := []struct {
		name       string
		role       types.TenantRole
		membership *types.Membership
		storageErr error
		expected   bool
		expectErr  bool
	}{
		{
			name:       "holds the role",
			role:       types.RoleAdmin,
			membership: &types.Membership{TenantID: tenantID, UserID: userID, Role: types.RoleAdmin},
			expected:   true,
		},
		{
			name:       "holds a different role",
			role:       types.RoleOwner,
			membership: &types.Membership{TenantID: tenantID, UserID: userID, Role: types.RoleAdmin},
			expected:   false,
		},
		{
			name:       "not a member is false, not an error",
			role:       types.RoleOwner,
			storageErr: storage.ErrNotFound,
			expected:   false,
		},
		{
			name:       "storage failure propagates",
			role:       types.RoleOwner,
			storageErr: errors.New("connection reset"),
			expectErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTenantMocks(ctrl)
			m.expectSpan("tenant.Service.HasRoleInTenant")
			m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, userID).Return(tc.membership, tc.storageErr)

			got, err := m.service().HasRoleInTenant(context.Background(), tenantID, userID, tc.role)

			if tc.expectErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestService_IsOwnerOfTenant(t *testing.T) {
	tenantID := "tenant-1"
	userID := "user-1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTenantMocks(ctrl)
	m.expectSpan("tenant.Service.IsOwnerOfTenant")
	m.expectSpan("tenant.Service.HasRoleInTenant")
	m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, userID).Return(
		&types.Membership{TenantID: tenantID, UserID: userID, Role: types.RoleOwner}, nil,
	)

	isOwner, err := m.service().IsOwnerOfTenant(context.Background(), tenantID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isOwner {
		t.Error("expected owner to be reported as owner")
	}
}

func TestService_CanManageMembersInTenant(t *testing.T) {
	tenantID := "tenant-1"
	userID := "user-1"

	testCases := []struct {
		name       string
		membership *types.Membership
		storageErr error
		expected   bool
	}{
		{
			name:       "admin can manage",
			membership: &types.Membership{TenantID: tenantID, UserID: userID, Role: types.RoleAdmin},
			expected:   true,
		},
		{
			name:       "viewer cannot manage",
			membership: &types.Membership{TenantID: tenantID, UserID: userID, Role: types.RoleViewer},
			expected:   false,
		},
		{
			name:       "non-member is false",
			storageErr: storage.ErrNotFound,
			expected:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTenantMocks(ctrl)
			m.expectSpan("tenant.Service.CanManageMembersInTenant")
			m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, userID).Return(tc.membership, tc.storageErr)

			got, err := m.service().CanManageMembersInTenant(context.Background(), tenantID, userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestService_DeleteTenant(t *testing.T) {
	tenantID := "tenant-1"
	ownerID := "user-owner"
	owner := &types.Membership{TenantID: tenantID, UserID: ownerID, Role: types.RoleOwner}

	testCases := []struct {
		name        string
		setupMocks  func(*tenantMocks)
		expectedErr error
	}{
		{
			name: "success - tuples cleaned up",
			setupMocks: func(m *tenantMocks) {
				members := []*types.Membership{
					owner,
					{TenantID: tenantID, UserID: "user-2", Role: types.RoleMember},
				}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, ownerID).Return(owner, nil)
				m.storage.EXPECT().ListMembersByTenantID(gomock.Any(), tenantID).Return(members, nil)
				m.storage.EXPECT().DeleteTenant(gomock.Any(), tenantID).Return(nil)
				m.authz.EXPECT().RemoveTenantRole(gomock.Any(), tenantID, ownerID, types.RoleOwner).Return(nil)
				m.authz.EXPECT().RemoveTenantRole(gomock.Any(), tenantID, "user-2", types.RoleMember).Return(nil)
			},
		},
		{
			name: "error - admin cannot delete",
			setupMocks: func(m *tenantMocks) {
				admin := &types.Membership{TenantID: tenantID, UserID: ownerID, Role: types.RoleAdmin}
				m.storage.EXPECT().GetMembership(gomock.Any(), tenantID, ownerID).Return(admin, nil)
			},
			expectedErr: ErrNotAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newTenantMocks(ctrl)
			m.expectSpan("tenant.Service.DeleteTenant")
			tc.setupMocks(m)

			err := m.service().DeleteTenant(context.Background(), ownerID, tenantID)

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

func TestSlugify(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"Acme Corp", "acme-corp"},
		{"  Spaced  Out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"Ünïcode & Symbols!", "n-code-symbols"},
	}

	for _, tc := range testCases {
		if got := slugify(tc.in); got != tc.expected {
			t.Errorf("slugify(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
