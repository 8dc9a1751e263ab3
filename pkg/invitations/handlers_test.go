// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/sekeco/iam-service/internal/identity"
	"github.com/sekeco/iam-service/internal/types"
)

func setupAPI(t *testing.T) (*MockServiceInterface, *MockLoggerInterface, *chi.Mux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	return mockService, mockLogger, mux
}

func authenticated(r *http.Request, userID, email string) *http.Request {
	ctx := context.WithValue(r.Context(), identity.ContextKey, userID)
	ctx = context.WithValue(ctx, identity.EmailContextKey, email)
	return r.WithContext(ctx)
}

func TestAPI_Invite(t *testing.T) {
	mockService, _, mux := setupAPI(t)

	invitation := &types.Invitation{
		ID:        "inv-1",
		TenantID:  "tenant-1",
		Email:     "invitee@example.com",
		Role:      types.RoleMember,
		ExpiresAt: time.Now().Add(168 * time.Hour),
	}
	mockService.EXPECT().
		Invite(gomock.Any(), "tenant-1", "user-1", "invitee@example.com", types.RoleMember).
		Return(invitation, nil)

	body := strings.NewReader(`{"email": "invitee@example.com", "role": "member"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/invitations", body)
	req = authenticated(req, "user-1", "owner@example.com")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "inv-1") {
		t.Errorf("expected invitation in response, got %s", rec.Body.String())
	}
}

func TestAPI_InviteValidation(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"missing email", `{"role": "member"}`},
		{"malformed email", `{"email": "not-an-email", "role": "member"}`},
		{"unknown role", `{"email": "a@b.com", "role": "superuser"}`},
		{"garbage body", `{`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, mux := setupAPI(t)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/invitations", strings.NewReader(tc.body))
			req = authenticated(req, "user-1", "owner@example.com")
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAPI_InviteUnauthenticated(t *testing.T) {
	_, _, mux := setupAPI(t)

	body := strings.NewReader(`{"email": "invitee@example.com", "role": "member"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/invitations", body)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAPI_AcceptErrorMapping(t *testing.T) {
	testCases := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{"unknown token", ErrInvitationNotFound, http.StatusNotFound},
		{"expired invitation", ErrInvitationNotPending, http.StatusConflict},
		{"wrong email", ErrEmailMismatch, http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, mux := setupAPI(t)

			mockService.EXPECT().
				Accept(gomock.Any(), "tok", "user-1", "me@example.com").
				Return(nil, tc.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/invitations/tok/accept", nil)
			req = authenticated(req, "user-1", "me@example.com")
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Fatalf("expected %d, got %d", tc.expectedCode, rec.Code)
			}
		})
	}
}

func TestAPI_RejectAnonymous(t *testing.T) {
	mockService, _, mux := setupAPI(t)

	mockService.EXPECT().Reject(gomock.Any(), "tok", "").Return(nil)

	// No identity headers on purpose.
	req := httptest.NewRequest(http.MethodPost, "/api/v0/invitations/tok/reject", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAPI_RejectAuthenticated(t *testing.T) {
	testCases := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{"matching email", nil, http.StatusOK},
		{"wrong email", ErrEmailMismatch, http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, mux := setupAPI(t)

			mockService.EXPECT().Reject(gomock.Any(), "tok", "me@example.com").Return(tc.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/invitations/tok/reject", nil)
			req = authenticated(req, "user-1", "me@example.com")
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Fatalf("expected %d, got %d", tc.expectedCode, rec.Code)
			}
		})
	}
}

func TestAPI_ListByTenantStatusFilter(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		mockService, _, mux := setupAPI(t)

		expired := []*types.Invitation{
			{ID: "inv-1", TenantID: "tenant-1", ExpiresAt: time.Now().Add(-time.Hour)},
		}
		mockService.EXPECT().ListExpiredByTenant(gomock.Any(), "tenant-1", "user-1").Return(expired, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/invitations?status=expired", nil)
		req = authenticated(req, "user-1", "me@example.com")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "inv-1") {
			t.Errorf("expected expired invitation in response, got %s", rec.Body.String())
		}
	})

	t.Run("unknown filter", func(t *testing.T) {
		_, _, mux := setupAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/tenant-1/invitations?status=bogus", nil)
		req = authenticated(req, "user-1", "me@example.com")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAPI_ListMineExpired(t *testing.T) {
	mockService, _, mux := setupAPI(t)

	mockService.EXPECT().ListExpiredByEmail(gomock.Any(), "me@example.com").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/invitations?status=expired", nil)
	req = authenticated(req, "user-1", "me@example.com")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAPI_Cancel(t *testing.T) {
	mockService, _, mux := setupAPI(t)

	mockService.EXPECT().Cancel(gomock.Any(), "tenant-1", "inv-1", "user-1").Return(ErrInvitationNotPending)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/tenants/tenant-1/invitations/inv-1", nil)
	req = authenticated(req, "user-1", "me@example.com")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
