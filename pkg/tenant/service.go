// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/storage"
	"github.com/sekeco/iam-service/internal/tracing"
	"github.com/sekeco/iam-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	db      DBInterface
	authz   AuthzInterface
	kratos  KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	db DBInterface,
	authz AuthzInterface,
	kratos KratosClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		db:      db,
		authz:   authz,
		kratos:  kratos,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateTenant provisions a tenant and attaches the creator as its first
// owner in the same transaction.
func (s *Service) CreateTenant(ctx context.Context, name, slug string, creatorID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if slug == "" {
		slug = slugify(name)
	}

	var created *types.Tenant
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.storage.CreateTenant(ctx, &types.Tenant{
			Name:     name,
			Slug:     slug,
			IsActive: true,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return ErrSlugTaken
			}
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		now := time.Now()
		if _, err := s.storage.AddMember(ctx, &types.Membership{
			UserID:   creatorID,
			TenantID: created.ID,
			Role:     types.RoleOwner,
			JoinedAt: &now,
		}); err != nil {
			return fmt.Errorf("failed to add creator as owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignTenantRole(ctx, created.ID, creatorID, types.RoleOwner); err != nil {
		s.logger.Errorf("failed to assign owner tuple for tenant %s: %v", created.ID, err)
	}

	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (s *Service) GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenantBySlug")
	defer span.End()

	tenant, err := s.storage.GetTenantBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

func (s *Service) ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenantsByUserID")
	defer span.End()

	return s.storage.ListTenantsByUserID(ctx, userID)
}

func (s *Service) UpdateTenant(ctx context.Context, callerID string, tenant *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	caller, err := s.callerMembership(ctx, tenant.ID, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.CanUpdateTenant() {
		return nil, ErrNotAllowed
	}

	if err := s.storage.UpdateTenant(ctx, tenant, paths); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrSlugTaken
		}
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return s.storage.GetTenantByID(ctx, tenant.ID)
}

func (s *Service) SetTenantStatus(ctx context.Context, callerID, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetTenantStatus")
	defer span.End()

	caller, err := s.callerMembership(ctx, id, callerID)
	if err != nil {
		return err
	}
	if !caller.Role.CanDeleteTenant() {
		return ErrNotAllowed
	}

	if err := s.storage.SetTenantStatus(ctx, id, active); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTenantNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteTenant(ctx context.Context, callerID, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	caller, err := s.callerMembership(ctx, id, callerID)
	if err != nil {
		return err
	}
	if !caller.Role.CanDeleteTenant() {
		return ErrNotAllowed
	}

	members, err := s.storage.ListMembersByTenantID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	if err := s.storage.DeleteTenant(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	// Membership rows cascade, tuples are cleaned up here best effort.
	for _, m := range members {
		if err := s.authz.RemoveTenantRole(ctx, id, m.UserID, m.Role); err != nil {
			s.logger.Errorf("failed to remove tuple for user %s on tenant %s: %v", m.UserID, id, err)
		}
	}

	return nil
}

// ListTenantUsers joins membership rows with identity emails. Any role in
// the tenant may list its members.
func (s *Service) ListTenantUsers(ctx context.Context, tenantID, callerID string) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenantUsers")
	defer span.End()

	if _, err := s.callerMembership(ctx, tenantID, callerID); err != nil {
		return nil, err
	}

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	users := make([]*types.TenantUser, 0, len(members))
	for _, m := range members {
		email, err := s.kratos.GetIdentityEmail(ctx, m.UserID)
		if err != nil {
			// The identity may have been deleted upstream, the
			// membership row still counts.
			s.logger.Warnf("failed to resolve email for user %s: %v", m.UserID, err)
			email = "unknown"
		}

		users = append(users, &types.TenantUser{
			UserID:   m.UserID,
			Email:    email,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}

	return users, nil
}

func (s *Service) GetRoleInTenant(ctx context.Context, tenantID, userID string) (types.TenantRole, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetRoleInTenant")
	defer span.End()

	m, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrMemberNotFound
		}
		return "", err
	}
	return m.Role, nil
}

// HasRoleInTenant reports whether the user holds exactly the given role.
// Non-membership is a regular false, never an error.
func (s *Service) HasRoleInTenant(ctx context.Context, tenantID, userID string, role types.TenantRole) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.HasRoleInTenant")
	defer span.End()

	m, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return m.Role == role, nil
}

func (s *Service) IsOwnerOfTenant(ctx context.Context, tenantID, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.IsOwnerOfTenant")
	defer span.End()

	return s.HasRoleInTenant(ctx, tenantID, userID, types.RoleOwner)
}

func (s *Service) CanManageMembersInTenant(ctx context.Context, tenantID, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CanManageMembersInTenant")
	defer span.End()

	m, err := s.storage.GetMembership(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return m.Role.CanManageMembers(), nil
}

// UpdateMemberRole changes a member's role. Demoting the last remaining
// owner is refused, the owner count is taken under row locks so two
// concurrent demotions cannot both pass the check.
func (s *Service) UpdateMemberRole(ctx context.Context, tenantID, callerID, userID string, role types.TenantRole) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateMemberRole")
	defer span.End()

	caller, err := s.callerMembership(ctx, tenantID, callerID)
	if err != nil {
		return err
	}
	if !caller.Role.CanManageMembers() {
		return ErrNotAllowed
	}

	var previous types.TenantRole
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		target, err := s.storage.GetMembership(ctx, tenantID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("failed to get membership: %w", err)
		}

		previous = target.Role
		if previous == role {
			return nil
		}

		if previous == types.RoleOwner && role != types.RoleOwner {
			owners, err := s.storage.CountOwnersForUpdate(ctx, tenantID)
			if err != nil {
				return fmt.Errorf("failed to count owners: %w", err)
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}

		return s.storage.UpdateMemberRole(ctx, tenantID, userID, role)
	})
	if err != nil {
		return err
	}
	if previous == role {
		return nil
	}

	if err := s.authz.RemoveTenantRole(ctx, tenantID, userID, previous); err != nil {
		s.logger.Errorf("failed to remove old role tuple: %v", err)
	}
	if err := s.authz.AssignTenantRole(ctx, tenantID, userID, role); err != nil {
		s.logger.Errorf("failed to assign new role tuple: %v", err)
	}

	return nil
}

// RemoveMember detaches a user from the tenant. Members may leave on their
// own, removing someone else requires member management rights. The last
// owner can neither leave nor be removed.
func (s *Service) RemoveMember(ctx context.Context, tenantID, callerID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveMember")
	defer span.End()

	caller, err := s.callerMembership(ctx, tenantID, callerID)
	if err != nil {
		return err
	}
	if callerID != userID && !caller.Role.CanManageMembers() {
		return ErrNotAllowed
	}

	var removed types.TenantRole
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		target, err := s.storage.GetMembership(ctx, tenantID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("failed to get membership: %w", err)
		}

		if target.Role == types.RoleOwner {
			owners, err := s.storage.CountOwnersForUpdate(ctx, tenantID)
			if err != nil {
				return fmt.Errorf("failed to count owners: %w", err)
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}

		removed = target.Role
		return s.storage.RemoveMember(ctx, tenantID, userID)
	})
	if err != nil {
		return err
	}

	if err := s.authz.RemoveTenantRole(ctx, tenantID, userID, removed); err != nil {
		s.logger.Errorf("failed to remove role tuple: %v", err)
	}

	return nil
}

func (s *Service) callerMembership(ctx context.Context, tenantID, callerID string) (*types.Membership, error) {
	m, err := s.storage.GetMembership(ctx, tenantID, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotAllowed
		}
		return nil, fmt.Errorf("failed to check caller membership: %w", err)
	}
	return m, nil
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
