// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/sekeco/iam-service/internal/authorization"
	"github.com/sekeco/iam-service/internal/identity"
	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/types"
)

// SecurityLoggerInterface records authorization denials on the admin surface.
type SecurityLoggerInterface interface {
	AuthzFail(userID, ability string)
}

// panelAdmission gates the admin surface on CanAccessPanel, which covers
// both the panel role allow-list and the email-domain fallback.
func panelAdmission(authorizer authorization.AuthorizerInterface, security SecurityLoggerInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, email := identity.UserFromContext(r.Context())
			if userID == "" {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			allowed, err := authorizer.CanAccessPanel(r.Context(), types.User{ID: userID, Email: email})
			if err != nil {
				logger.Errorf("panel admission check failed: %v", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if !allowed {
				security.AuthzFail(userID, "panel_access")
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
