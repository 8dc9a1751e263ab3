// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

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

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"omitempty,lowercase"`
}

type UpdateTenantRequest struct {
	Name  *string  `json:"name,omitempty"`
	Slug  *string  `json:"slug,omitempty"`
	Logo  *string  `json:"logo,omitempty"`
	Paths []string `json:"paths,omitempty"`
}

type SetStatusRequest struct {
	Active bool `json:"active"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
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
	mux.Post("/api/v0/tenants", a.create)
	mux.Get("/api/v0/tenants", a.listMine)
	mux.Get("/api/v0/tenants/{id}", a.get)
	mux.Patch("/api/v0/tenants/{id}", a.update)
	mux.Put("/api/v0/tenants/{id}/status", a.setStatus)
	mux.Delete("/api/v0/tenants/{id}", a.delete)

	mux.Get("/api/v0/tenants/{id}/users", a.listUsers)
	mux.Patch("/api/v0/tenants/{id}/users/{user_id}", a.updateRole)
	mux.Delete("/api/v0/tenants/{id}/users/{user_id}", a.removeMember)
}

// RegisterAdminEndpoints exposes the cross-tenant surface. The caller is
// expected to mount these behind a panel-admission middleware.
func (a *API) RegisterAdminEndpoints(mux chi.Router) {
	mux.Get("/tenants", a.listAll)
}

func (a *API) listAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listAll")
	defer span.End()

	tenants, err := a.service.ListTenants(ctx)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, tenants)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.create")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := a.service.CreateTenant(ctx, req.Name, req.Slug, userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusCreated, tenant)
}

func (a *API) listMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listMine")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tenants, err := a.service.ListTenantsByUserID(ctx, userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, tenants)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.get")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tenantID := chi.URLParam(r, "id")
	if _, err := a.service.GetRoleInTenant(ctx, tenantID, userID); err != nil {
		a.writeServiceError(w, err)
		return
	}

	tenant, err := a.service.GetTenant(ctx, tenantID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, tenant)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.update")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	update := &itypes.Tenant{ID: chi.URLParam(r, "id")}
	paths := req.Paths
	if len(paths) == 0 {
		if req.Name != nil {
			paths = append(paths, "name")
		}
		if req.Slug != nil {
			paths = append(paths, "slug")
		}
		if req.Logo != nil {
			paths = append(paths, "logo")
		}
	}
	if req.Name != nil {
		update.Name = *req.Name
	}
	if req.Slug != nil {
		update.Slug = *req.Slug
	}
	update.Logo = req.Logo

	tenant, err := a.service.UpdateTenant(ctx, userID, update, paths)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, tenant)
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.setStatus")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.service.SetTenantStatus(ctx, userID, chi.URLParam(r, "id"), req.Active); err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, nil)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.delete")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if err := a.service.DeleteTenant(ctx, userID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, nil)
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.listUsers")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	users, err := a.service.ListTenantUsers(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, users)
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.updateRole")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req UpdateRoleRequest
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

	err = a.service.UpdateMemberRole(ctx, chi.URLParam(r, "id"), userID, chi.URLParam(r, "user_id"), role)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, nil)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.removeMember")
	defer span.End()

	userID, _ := identity.UserFromContext(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	err := a.service.RemoveMember(ctx, chi.URLParam(r, "id"), userID, chi.URLParam(r, "user_id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	writeResponse(w, http.StatusOK, nil)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTenantNotFound), errors.Is(err, ErrMemberNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSlugTaken), errors.Is(err, ErrLastOwner):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotAllowed):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		a.logger.Errorf("tenant operation failed: %v", err)
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
