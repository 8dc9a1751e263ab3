// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/tracing"
)

const (
	// HeaderName is the header used to pass the authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
	// EmailHeaderName is the header used to pass the authenticated identity email
	EmailHeaderName = "X-Kratos-Authenticated-Identity-Email"
	// ContextKey is the key used to store the user ID in the context
	ContextKey = "user_id"
	// EmailContextKey is the key used to store the user email in the context
	EmailContextKey = "user_email"
)

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		ctx = context.WithValue(ctx, ContextKey, r.Header.Get(HeaderName))
		ctx = context.WithValue(ctx, EmailContextKey, r.Header.Get(EmailHeaderName))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated caller, if any. The zero user
// means the request came in anonymously.
func UserFromContext(ctx context.Context) (string, string) {
	userID, _ := ctx.Value(ContextKey).(string)
	email, _ := ctx.Value(EmailContextKey).(string)
	return userID, email
}
