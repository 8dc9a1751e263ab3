// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sekeco/iam-service/internal/http/types"
	"github.com/sekeco/iam-service/internal/identity"
	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/tracing"
	itypes "github.com/sekeco/iam-service/internal/types"
)

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants/{id}/invitations", a.invite)
	mux.Get("/api/v0/tenants/{id}/invitations", a.listByTenant)
	mux.Delete("/api/v0/tenants/{id}/invitations/{invitation_id}", a.cancel)
	mux.Get("/api/v0/invitations", a.listMine)
	mux.Post("/api/v0/invitations/{token}/accept", a.accept)
	mux.Post("/api/v0/invitations/{token}/reject", a.reject)
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.invite")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	role, err := itypes.ParseTenantRole(req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	invitation, err := a.service.Invite(ctx, chi.URLParam(r, "id"), userID, req.Email, role)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusCreated, invitation)
}

func (a *API) listByTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.listByTenant")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tenantID := chi.URLParam(r, "id")

	var invs []*itypes.Invitation
	var err error
	switch r.URL.Query().Get("status") {
	case "", "pending":
		invs, err = a.service.ListPendingByTenant(ctx, tenantID, userID)
	case "expired":
		invs, err = a.service.ListExpiredByTenant(ctx, tenantID, userID)
	default:
		writeError(w, http.StatusBadRequest, "unknown status filter")
		return
	}
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, invs)
}

func (a *API) listMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.listMine")
	defer span.End()

	_, email := identity.UserFromContext(ctx)
	if email == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var invs []*itypes.Invitation
	var err error
	switch r.URL.Query().Get("status") {
	case "", "pending":
		invs, err = a.service.ListPendingByEmail(ctx, email)
	case "expired":
		invs, err = a.service.ListExpiredByEmail(ctx, email)
	default:
		writeError(w, http.StatusBadRequest, "unknown status filter")
		return
	}
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, invs)
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.cancel")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	err := a.service.Cancel(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "invitation_id"), userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, nil)
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.accept")
	defer span.End()

	userID, email := identity.UserFromContext(ctx)
	if userID == "" || email == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	membership, err := a.service.Accept(ctx, chi.URLParam(r, "token"), userID, email)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, membership)
}

// reject is deliberately reachable without authentication, possession of the
// token is the only proof required to decline. An authenticated caller's
// email is still checked against the invitation.
func (a *API) reject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.reject")
	defer span.End()

	_, email := identity.UserFromContext(ctx)

	if err := a.service.Reject(ctx, chi.URLParam(r, "token"), email); err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, nil)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvitationNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvitationNotPending), errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrTenantInactive):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrEmailMismatch), errors.Is(err, ErrNotAllowed):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		a.logger.Errorf("invitation operation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.Response{
		Data:   data,
		Status: status,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.Response{
		Message: message,
		Status:  status,
	})
}
