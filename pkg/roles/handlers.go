// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sekeco/iam-service/internal/http/types"
	"github.com/sekeco/iam-service/internal/logging"
	itypes "github.com/sekeco/iam-service/internal/types"
)

// Role is the read-only role descriptor clients build their pickers from.
type Role struct {
	Name             string   `json:"name"`
	Label            string   `json:"label"`
	Description      string   `json:"description"`
	Permissions      []string `json:"permissions"`
	CanInviteMembers bool     `json:"can_invite_members"`
	CanManageMembers bool     `json:"can_manage_members"`
	CanDeleteTenant  bool     `json:"can_delete_tenant"`
}

type API struct {
	logger logging.LoggerInterface
}

func NewAPI(logger logging.LoggerInterface) *API {
	return &API{logger: logger}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/roles", a.list)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	roles := make([]Role, 0, len(itypes.TenantRoles()))
	for _, role := range itypes.TenantRoles() {
		roles = append(roles, Role{
			Name:             role.String(),
			Label:            role.Label(),
			Description:      role.Description(),
			Permissions:      role.Permissions(),
			CanInviteMembers: role.CanInviteMembers(),
			CanManageMembers: role.CanManageMembers(),
			CanDeleteTenant:  role.CanDeleteTenant(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(types.Response{
		Data:   roles,
		Status: http.StatusOK,
	})
}
