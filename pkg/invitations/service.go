// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/storage"
	"github.com/sekeco/iam-service/internal/tracing"
	"github.com/sekeco/iam-service/internal/types"
)

const defaultLifetime = 168 * time.Hour

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	db       DBInterface
	authz    AuthzInterface
	kratos   KratosClientInterface
	notifier NotifierInterface
	audit    AuditLoggerInterface

	lifetime            time.Duration
	enforceActiveTenant bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	db DBInterface,
	authz AuthzInterface,
	kratos KratosClientInterface,
	notifier NotifierInterface,
	audit AuditLoggerInterface,
	invitationLifetime string,
	enforceActiveTenant bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	lifetime, err := time.ParseDuration(invitationLifetime)
	if err != nil || lifetime <= 0 {
		lifetime = defaultLifetime
	}

	return &Service{
		storage:             storage,
		db:                  db,
		authz:               authz,
		kratos:              kratos,
		notifier:            notifier,
		audit:               audit,
		lifetime:            lifetime,
		enforceActiveTenant: enforceActiveTenant,
		tracer:              tracer,
		monitor:             monitor,
		logger:              logger,
	}
}

// Invite issues a pending invitation for email into tenantID. When an
// undecided invitation for the same address already exists, even one past
// its expiry, it is refreshed in place: new token, new expiry, and the
// latest inviter and role win.
func (s *Service) Invite(ctx context.Context, tenantID, inviterID, email string, role types.TenantRole) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Invite")
	defer span.End()

	email = normalizeEmail(email)

	inviter, err := s.storage.GetMembership(ctx, tenantID, inviterID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotAllowed
		}
		return nil, fmt.Errorf("failed to check inviter membership: %w", err)
	}
	if !inviter.Role.CanInviteMembers() {
		return nil, ErrNotAllowed
	}

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if s.enforceActiveTenant && !tenant.IsActive {
		return nil, ErrTenantInactive
	}

	var invitation *types.Invitation
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		// An existing identity that already belongs to the tenant cannot
		// be invited again.
		identityID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to resolve identity: %w", err)
		}
		if identityID != "" {
			if _, err := s.storage.GetMembership(ctx, tenantID, identityID); err == nil {
				return ErrAlreadyMember
			} else if !errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("failed to check membership: %w", err)
			}
		}

		token, err := generateToken()
		if err != nil {
			return err
		}

		// Any undecided row is refreshed in place, expired or not. The
		// unique index on (tenant_id, email) covers undecided rows past
		// their expiry too, so inserting alongside one would collide.
		existing, err := s.storage.GetUndecidedInvitation(ctx, tenantID, email)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to check undecided invitations: %w", err)
		}

		if existing != nil {
			existing.Token = token
			existing.ExpiresAt = time.Now().Add(s.lifetime)
			existing.InvitedBy = inviterID
			existing.Role = role
			if err := s.storage.UpdateInvitation(ctx, existing); err != nil {
				return fmt.Errorf("failed to refresh invitation: %w", err)
			}
			invitation = existing
			return nil
		}

		invitation, err = s.storage.CreateInvitation(ctx, &types.Invitation{
			TenantID:  tenantID,
			InvitedBy: inviterID,
			Email:     email,
			Role:      role,
			Token:     token,
			ExpiresAt: time.Now().Add(s.lifetime),
		})
		if err != nil {
			return fmt.Errorf("failed to create invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Mail delivery is best effort, the invitation row is already durable.
	if err := s.notifier.SendInvitation(ctx, tenant, invitation); err != nil {
		s.logger.Errorf("failed to send invitation email to %s: %v", email, err)
	}

	s.audit.InvitationIssued(tenantID, email)

	return invitation, nil
}

// Accept redeems a pending invitation for the authenticated identity. The
// membership attach and the invitation state flip commit atomically.
func (s *Service) Accept(ctx context.Context, token, userID, email string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Accept")
	defer span.End()

	var membership *types.Membership
	var invitation *types.Invitation
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		inv, err := s.storage.GetInvitationByToken(ctx, token)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInvitationNotFound
			}
			return fmt.Errorf("failed to get invitation: %w", err)
		}
		if !inv.IsPending() {
			return ErrInvitationNotPending
		}
		if !strings.EqualFold(inv.Email, email) {
			return ErrEmailMismatch
		}
		invitation = inv

		now := time.Now()

		existing, err := s.storage.GetMembership(ctx, inv.TenantID, userID)
		if err == nil {
			// Already a member, the invitation is consumed without
			// touching the existing membership.
			membership = existing
			return s.storage.MarkInvitationAccepted(ctx, inv.ID, now)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		membership, err = s.storage.AddMember(ctx, &types.Membership{
			UserID:    userID,
			TenantID:  inv.TenantID,
			Role:      inv.Role,
			InvitedBy: &inv.InvitedBy,
			InvitedAt: &inv.CreatedAt,
			JoinedAt:  &now,
		})
		if err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		return s.storage.MarkInvitationAccepted(ctx, inv.ID, now)
	})
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignTenantRole(ctx, invitation.TenantID, userID, membership.Role); err != nil {
		// The membership row is authoritative, tuples are reconciled lazily.
		s.logger.Errorf("failed to assign tenant role tuple: %v", err)
	}

	return membership, nil
}

// Reject declines a pending invitation. No authentication is required, the
// token alone proves possession of the invitation email. When the caller is
// authenticated, email is their address and must match the invitation.
func (s *Service) Reject(ctx context.Context, token, email string) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Reject")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		inv, err := s.storage.GetInvitationByToken(ctx, token)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInvitationNotFound
			}
			return fmt.Errorf("failed to get invitation: %w", err)
		}
		if !inv.IsPending() {
			return ErrInvitationNotPending
		}
		if email != "" && !strings.EqualFold(inv.Email, email) {
			return ErrEmailMismatch
		}

		return s.storage.MarkInvitationRejected(ctx, inv.ID, time.Now())
	})
}

// Cancel withdraws a pending invitation. Accepted, rejected, and expired
// invitations are kept for audit and cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, tenantID, invitationID, callerID string) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Cancel")
	defer span.End()

	caller, err := s.storage.GetMembership(ctx, tenantID, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotAllowed
		}
		return fmt.Errorf("failed to check caller membership: %w", err)
	}
	if !caller.Role.CanInviteMembers() {
		return ErrNotAllowed
	}

	inv, err := s.storage.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv.TenantID != tenantID {
		return ErrInvitationNotFound
	}
	if !inv.IsPending() {
		return ErrInvitationNotPending
	}

	return s.storage.DeleteInvitation(ctx, inv.ID)
}

func (s *Service) ListPendingByTenant(ctx context.Context, tenantID, callerID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListPendingByTenant")
	defer span.End()

	caller, err := s.storage.GetMembership(ctx, tenantID, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotAllowed
		}
		return nil, fmt.Errorf("failed to check caller membership: %w", err)
	}
	if !caller.Role.CanInviteMembers() {
		return nil, ErrNotAllowed
	}

	return s.storage.ListPendingInvitationsByTenantID(ctx, tenantID)
}

func (s *Service) ListPendingByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListPendingByEmail")
	defer span.End()

	return s.storage.ListPendingInvitationsByEmail(ctx, normalizeEmail(email))
}

// ListExpiredByTenant returns invitations that lapsed without a decision,
// gated the same way as ListPendingByTenant.
func (s *Service) ListExpiredByTenant(ctx context.Context, tenantID, callerID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListExpiredByTenant")
	defer span.End()

	caller, err := s.storage.GetMembership(ctx, tenantID, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotAllowed
		}
		return nil, fmt.Errorf("failed to check caller membership: %w", err)
	}
	if !caller.Role.CanInviteMembers() {
		return nil, ErrNotAllowed
	}

	return s.storage.ListExpiredInvitationsByTenantID(ctx, tenantID)
}

func (s *Service) ListExpiredByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListExpiredByEmail")
	defer span.End()

	return s.storage.ListExpiredInvitationsByEmail(ctx, normalizeEmail(email))
}

// CleanupExpired deletes invitations that lapsed without a decision and
// returns how many rows were removed.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CleanupExpired")
	defer span.End()

	count, err := s.storage.DeleteExpiredInvitations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired invitations: %w", err)
	}

	if count > 0 {
		s.logger.Infof("Cleaned up %d expired invitations", count)
	}

	return count, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
