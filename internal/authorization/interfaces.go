// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"

	"github.com/sekeco/iam-service/internal/openfga"
	"github.com/sekeco/iam-service/internal/types"
)

type AuthorizerInterface interface {
	// Allowed runs the super-admin bypass first and the specific
	// relation check only when the bypass does not apply.
	Allowed(ctx context.Context, userID, relation, object string) (bool, error)
	// CanAccessPanel gates admission to the admin panel as a whole,
	// independent of any tenant membership.
	CanAccessPanel(ctx context.Context, user types.User) (bool, error)
	HasRole(ctx context.Context, userID, role string) (bool, error)
	AssignRole(ctx context.Context, userID, role string) error
	RemoveRole(ctx context.Context, userID, role string) error
	AssignTenantRole(ctx context.Context, tenantID, userID string, role types.TenantRole) error
	RemoveTenantRole(ctx context.Context, tenantID, userID string, role types.TenantRole) error
}

type AuthzClientInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error)
	ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error)
}
