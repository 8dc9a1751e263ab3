// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/sekeco/iam-service/internal/db"
	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/tracing"
	"github.com/sekeco/iam-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const (
	tenantColumns     = "id, name, slug, logo, is_active, created_at, updated_at"
	membershipColumns = "id, user_id, tenant_id, role, invited_by, invited_at, joined_at, created_at, updated_at"
	invitationColumns = "id, tenant_id, invited_by, email, role, token, expires_at, accepted_at, rejected_at, created_at, updated_at"
)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var created types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "slug", "logo", "is_active").
		Values(id.String(), t.Name, t.Slug, t.Logo, t.IsActive).
		Suffix("RETURNING " + tenantColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Slug, &created.Logo, &created.IsActive, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("tenant slug %q: %w", t.Slug, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantBySlug")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) getTenant(ctx context.Context, pred sq.Eq) (*types.Tenant, error) {
	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "logo", "is_active", "created_at", "updated_at").
		From("tenants").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Slug, &t.Logo, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "slug", "logo", "is_active", "created_at", "updated_at").
		From("tenants").
		OrderBy("created_at")

	return s.scanTenants(ctx, query)
}

func (s *Storage) ListTenantsByUserID(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantsByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("t.id", "t.name", "t.slug", "t.logo", "t.is_active", "t.created_at", "t.updated_at").
		From("tenants t").
		Join("user_tenant m ON t.id = m.tenant_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("t.created_at")

	return s.scanTenants(ctx, query)
}

func (s *Storage) scanTenants(ctx context.Context, query sq.SelectBuilder) ([]*types.Tenant, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Logo, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates the fields named in paths, PATCH style. Unknown paths
// are ignored.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = tenant.Name
		case "slug":
			updateMap["slug"] = tenant.Slug
		case "logo":
			updateMap["logo"] = tenant.Logo
		case "is_active":
			updateMap["is_active"] = tenant.IsActive
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = time.Now().UTC()

	_, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return fmt.Errorf("tenant slug %q: %w", tenant.Slug, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	return nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("is_active", active).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set tenant status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteTenant removes the tenant. Membership and invitation rows follow via
// ON DELETE CASCADE.
func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	return nil
}

func (s *Storage) AddMember(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var created types.Membership
	err = s.db.Statement(ctx).
		Insert("user_tenant").
		Columns("id", "user_id", "tenant_id", "role", "invited_by", "invited_at", "joined_at").
		Values(id.String(), m.UserID, m.TenantID, m.Role, m.InvitedBy, m.InvitedAt, m.JoinedAt).
		Suffix("RETURNING " + membershipColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.UserID, &created.TenantID, &created.Role, &created.InvitedBy, &created.InvitedAt, &created.JoinedAt, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("membership for user %s in tenant %s: %w", m.UserID, m.TenantID, ErrDuplicateKey)
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetMembership(ctx context.Context, tenantID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_id", "role", "invited_by", "invited_at", "joined_at", "created_at", "updated_at").
		From("user_tenant").
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.UserID, &m.TenantID, &m.Role, &m.InvitedBy, &m.InvitedAt, &m.JoinedAt, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "user_id", "tenant_id", "role", "invited_by", "invited_at", "joined_at", "created_at", "updated_at").
		From("user_tenant").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.TenantID, &m.Role, &m.InvitedBy, &m.InvitedAt, &m.JoinedAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, tenantID, userID string, role types.TenantRole) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("user_tenant").
		Set("role", role).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{
			"tenant_id": tenantID,
			"user_id":   userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) RemoveMember(ctx context.Context, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("user_tenant").
		Where(sq.Eq{
			"tenant_id": tenantID,
			"user_id":   userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// CountOwnersForUpdate counts the tenant's owners while taking row locks on
// them. FOR UPDATE cannot be combined with aggregates, so rows are locked by
// id and counted client side. Callers must run inside a transaction for the
// locks to outlive the statement.
func (s *Storage) CountOwnersForUpdate(ctx context.Context, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountOwnersForUpdate")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id").
		From("user_tenant").
		Where(sq.Eq{"tenant_id": tenantID, "role": types.RoleOwner}).
		Suffix("FOR UPDATE").
		QueryContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to scan owner row: %w", err)
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return count, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var created types.Invitation
	err = s.db.Statement(ctx).
		Insert("tenant_invitations").
		Columns("id", "tenant_id", "invited_by", "email", "role", "token", "expires_at").
		Values(id.String(), inv.TenantID, inv.InvitedBy, inv.Email, inv.Role, inv.Token, inv.ExpiresAt).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.InvitedBy, &created.Email, &created.Role, &created.Token, &created.ExpiresAt, &created.AcceptedAt, &created.RejectedAt, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("pending invitation for %s in tenant %s: %w", inv.Email, inv.TenantID, ErrDuplicateKey)
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return &created, nil
}

// UpdateInvitation refreshes a pending invitation in place: role, inviter,
// token and expiry.
func (s *Storage) UpdateInvitation(ctx context.Context, inv *types.Invitation) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenant_invitations").
		Set("role", inv.Role).
		Set("invited_by", inv.InvitedBy).
		Set("token", inv.Token).
		Set("expires_at", inv.ExpiresAt).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": inv.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	return s.getInvitation(ctx, sq.Eq{"token": token})
}

// GetUndecidedInvitation returns the single undecided invitation for the
// (tenant, email) pair, if any, regardless of expiry. It matches the same
// rows the partial unique index on (tenant_id, email) guards, so a re-invite
// can refresh an expired row instead of colliding with it.
func (s *Storage) GetUndecidedInvitation(ctx context.Context, tenantID, email string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUndecidedInvitation")
	defer span.End()

	return s.getInvitation(ctx, undecidedPredicate(sq.Eq{"tenant_id": tenantID, "email": email}))
}

func (s *Storage) getInvitation(ctx context.Context, pred sq.Sqlizer) (*types.Invitation, error) {
	var inv types.Invitation
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "invited_by", "email", "role", "token", "expires_at", "accepted_at", "rejected_at", "created_at", "updated_at").
		From("tenant_invitations").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.TenantID, &inv.InvitedBy, &inv.Email, &inv.Role, &inv.Token, &inv.ExpiresAt, &inv.AcceptedAt, &inv.RejectedAt, &inv.CreatedAt, &inv.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &inv, nil
}

func (s *Storage) ListPendingInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsByTenantID")
	defer span.End()

	return s.listInvitations(ctx, pendingPredicate(sq.Eq{"tenant_id": tenantID}))
}

func (s *Storage) ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsByEmail")
	defer span.End()

	return s.listInvitations(ctx, pendingPredicate(sq.Eq{"email": email}))
}

func (s *Storage) ListExpiredInvitationsByTenantID(ctx context.Context, tenantID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListExpiredInvitationsByTenantID")
	defer span.End()

	return s.listInvitations(ctx, expiredPredicate(sq.Eq{"tenant_id": tenantID}))
}

func (s *Storage) ListExpiredInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListExpiredInvitationsByEmail")
	defer span.End()

	return s.listInvitations(ctx, expiredPredicate(sq.Eq{"email": email}))
}

func (s *Storage) listInvitations(ctx context.Context, pred sq.Sqlizer) ([]*types.Invitation, error) {
	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "invited_by", "email", "role", "token", "expires_at", "accepted_at", "rejected_at", "created_at", "updated_at").
		From("tenant_invitations").
		Where(pred).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		var inv types.Invitation
		if err := rows.Scan(&inv.ID, &inv.TenantID, &inv.InvitedBy, &inv.Email, &inv.Role, &inv.Token, &inv.ExpiresAt, &inv.AcceptedAt, &inv.RejectedAt, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

func (s *Storage) MarkInvitationAccepted(ctx context.Context, id string, at time.Time) error {
	return s.markInvitation(ctx, "storage.MarkInvitationAccepted", id, "accepted_at", at)
}

func (s *Storage) MarkInvitationRejected(ctx context.Context, id string, at time.Time) error {
	return s.markInvitation(ctx, "storage.MarkInvitationRejected", id, "rejected_at", at)
}

func (s *Storage) markInvitation(ctx context.Context, spanName, id, column string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenant_invitations").
		Set(column, at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenant_invitations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteExpiredInvitations bulk-deletes invitations that lapsed without a
// decision and returns the number removed. Safe to run on a schedule.
func (s *Storage) DeleteExpiredInvitations(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteExpiredInvitations")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenant_invitations").
		Where(sq.Eq{"accepted_at": nil}).
		Where(sq.Eq{"rejected_at": nil}).
		Where(sq.LtOrEq{"expires_at": time.Now()}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete expired invitations: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return count, nil
}

// undecidedPredicate narrows pred to rows that were neither accepted nor
// rejected, regardless of expiry.
func undecidedPredicate(pred sq.Eq) sq.Sqlizer {
	return sq.And{
		pred,
		sq.Eq{"accepted_at": nil},
		sq.Eq{"rejected_at": nil},
	}
}

// pendingPredicate narrows pred to rows in the derived pending state.
func pendingPredicate(pred sq.Eq) sq.Sqlizer {
	return sq.And{
		undecidedPredicate(pred),
		sq.Gt{"expires_at": time.Now()},
	}
}

// expiredPredicate narrows pred to rows that lapsed without a decision.
func expiredPredicate(pred sq.Eq) sq.Sqlizer {
	return sq.And{
		undecidedPredicate(pred),
		sq.LtOrEq{"expires_at": time.Now()},
	}
}
