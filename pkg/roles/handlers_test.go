// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sekeco/iam-service/internal/logging"
)

func TestAPI_List(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/roles", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data []Role `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(body.Data) != 4 {
		t.Fatalf("expected 4 roles, got %d", len(body.Data))
	}
	if body.Data[0].Name != "owner" || !body.Data[0].CanDeleteTenant {
		t.Errorf("expected owner first with delete rights, got %+v", body.Data[0])
	}
	for _, r := range body.Data {
		if r.Label == "" || r.Description == "" || len(r.Permissions) == 0 {
			t.Errorf("role %s is missing metadata", r.Name)
		}
	}
}
