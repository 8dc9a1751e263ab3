// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	fga "github.com/openfga/go-sdk"

	"github.com/sekeco/iam-service/internal/types"
)

// AuthorizationModelProvider builds the relation model the service expects
// to find in the openfga store. The model version is carried so that future
// schema changes can coexist during a migration window.
type AuthorizationModelProvider struct {
	version string
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}

// GetModel returns the authorization model for this provider's version.
//
// Tenant roles are direct relations mirroring the membership rows, while
// the can_* permissions are computed from them. Global roles live on the
// role type with a single assignee relation.
func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	return &fga.AuthorizationModel{
		SchemaVersion: "1.1",
		TypeDefinitions: []fga.TypeDefinition{
			{
				Type: "user",
			},
			{
				Type: "role",
				Relations: &map[string]fga.Userset{
					ASSIGNEE_RELATION: directUserset(),
				},
				Metadata: &fga.Metadata{
					Relations: &map[string]fga.RelationMetadata{
						ASSIGNEE_RELATION: directMetadata("user"),
					},
				},
			},
			{
				Type: "tenant",
				Relations: &map[string]fga.Userset{
					string(types.RoleOwner):  directUserset(),
					string(types.RoleAdmin):  directUserset(),
					string(types.RoleMember): directUserset(),
					string(types.RoleViewer): directUserset(),
					CAN_INVITE_MEMBERS_PERMISSION: union(
						computedUserset(string(types.RoleOwner)),
						computedUserset(string(types.RoleAdmin)),
					),
					CAN_MANAGE_MEMBERS_PERMISSION: union(
						computedUserset(string(types.RoleOwner)),
						computedUserset(string(types.RoleAdmin)),
					),
					CAN_UPDATE_TENANT_PERMISSION: union(
						computedUserset(string(types.RoleOwner)),
						computedUserset(string(types.RoleAdmin)),
					),
					CAN_DELETE_TENANT_PERMISSION: computedUserset(string(types.RoleOwner)),
					CAN_VIEW_PERMISSION: union(
						computedUserset(string(types.RoleOwner)),
						computedUserset(string(types.RoleAdmin)),
						computedUserset(string(types.RoleMember)),
						computedUserset(string(types.RoleViewer)),
					),
				},
				Metadata: &fga.Metadata{
					Relations: &map[string]fga.RelationMetadata{
						string(types.RoleOwner):       directMetadata("user"),
						string(types.RoleAdmin):       directMetadata("user"),
						string(types.RoleMember):      directMetadata("user"),
						string(types.RoleViewer):      directMetadata("user"),
						CAN_INVITE_MEMBERS_PERMISSION: {},
						CAN_MANAGE_MEMBERS_PERMISSION: {},
						CAN_UPDATE_TENANT_PERMISSION:  {},
						CAN_DELETE_TENANT_PERMISSION:  {},
						CAN_VIEW_PERMISSION:           {},
					},
				},
			},
		},
	}
}

func directUserset() fga.Userset {
	return fga.Userset{This: &map[string]interface{}{}}
}

func computedUserset(relation string) fga.Userset {
	return fga.Userset{ComputedUserset: &fga.ObjectRelation{Relation: fga.PtrString(relation)}}
}

func union(children ...fga.Userset) fga.Userset {
	return fga.Userset{Union: &fga.Usersets{Child: children}}
}

func directMetadata(userTypes ...string) fga.RelationMetadata {
	refs := make([]fga.RelationReference, 0, len(userTypes))
	for _, t := range userTypes {
		refs = append(refs, fga.RelationReference{Type: t})
	}
	return fga.RelationMetadata{DirectlyRelatedUserTypes: &refs}
}
