// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sekeco/iam-service/internal/authorization"
	"github.com/sekeco/iam-service/internal/db"
	"github.com/sekeco/iam-service/internal/identity"
	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/tracing"
	"github.com/sekeco/iam-service/pkg/invitations"
	"github.com/sekeco/iam-service/pkg/metrics"
	"github.com/sekeco/iam-service/pkg/roles"
	"github.com/sekeco/iam-service/pkg/status"
	"github.com/sekeco/iam-service/pkg/tenant"
)

func NewRouter(
	tenantAPI *tenant.API,
	invitationsAPI *invitations.API,
	identityMiddleware *identity.Middleware,
	dbClient db.DBClientInterface,
	authorizer authorization.AuthorizerInterface,
	security SecurityLoggerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identityMiddleware.HTTPMiddleware,
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	roles.NewAPI(logger).RegisterEndpoints(router)
	tenantAPI.RegisterEndpoints(router)
	invitationsAPI.RegisterEndpoints(router)

	router.Route("/api/v0/admin", func(r chi.Router) {
		r.Use(panelAdmission(authorizer, security, logger))
		tenantAPI.RegisterAdminEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
