// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"strings"

	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/tracing"
	"github.com/sekeco/iam-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Config struct {
	// BypassRoles short-circuit every Allowed decision.
	BypassRoles []string
	// PanelRoles admit a user to the admin panel.
	PanelRoles []string
	// AllowedEmailDomains admit a user to the panel when no role matches.
	AllowedEmailDomains []string
}

type Authorizer struct {
	client AuthzClientInterface
	cfg    Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(client AuthzClientInterface, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.client = client
	a.cfg = cfg

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

// ValidateModel checks that the store carries the model this service was
// built against. A mismatched model makes every Check unreliable, so the
// caller is expected to treat a failure as fatal.
func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	model := NewAuthorizationModelProvider("v0").GetModel()

	eq, err := a.client.CompareModel(ctx, *model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

// Allowed evaluates the super-admin bypass exactly once, before the specific
// relation check. The bypass never reaches into the invitation service, so
// structural invariants like last-owner protection cannot be skipped with it.
func (a *Authorizer) Allowed(ctx context.Context, userID, relation, object string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Allowed")
	defer span.End()

	bypass, err := a.hasAnyRole(ctx, userID, a.cfg.BypassRoles)
	if err != nil {
		return false, err
	}
	if bypass {
		return true, nil
	}

	return a.client.Check(ctx, UserTuple(userID), relation, object)
}

// CanAccessPanel admits a user when they hold one of the panel roles, falling
// back to the email-domain allow-list. This gates "can use the system at
// all", not standing within any tenant.
func (a *Authorizer) CanAccessPanel(ctx context.Context, user types.User) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanAccessPanel")
	defer span.End()

	allowed, err := a.hasAnyRole(ctx, user.ID, a.cfg.PanelRoles)
	if err != nil {
		return false, err
	}
	if allowed {
		return true, nil
	}

	for _, domain := range a.cfg.AllowedEmailDomains {
		if strings.HasSuffix(user.Email, "@"+domain) {
			return true, nil
		}
	}

	return false, nil
}

func (a *Authorizer) HasRole(ctx context.Context, userID, role string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.HasRole")
	defer span.End()

	return a.client.Check(ctx, UserTuple(userID), ASSIGNEE_RELATION, RoleTuple(role))
}

func (a *Authorizer) AssignRole(ctx context.Context, userID, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignRole")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), ASSIGNEE_RELATION, RoleTuple(role))
}

func (a *Authorizer) RemoveRole(ctx context.Context, userID, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveRole")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), ASSIGNEE_RELATION, RoleTuple(role))
}

// AssignTenantRole mirrors a membership row as a relation tuple so that
// relationship queries stay consistent with the database.
func (a *Authorizer) AssignTenantRole(ctx context.Context, tenantID, userID string, role types.TenantRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantRole")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userID), string(role), TenantTuple(tenantID))
}

func (a *Authorizer) RemoveTenantRole(ctx context.Context, tenantID, userID string, role types.TenantRole) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveTenantRole")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userID), string(role), TenantTuple(tenantID))
}

func (a *Authorizer) hasAnyRole(ctx context.Context, userID string, roles []string) (bool, error) {
	for _, role := range roles {
		ok, err := a.client.Check(ctx, UserTuple(userID), ASSIGNEE_RELATION, RoleTuple(role))
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
