// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
	"time"
)

func TestInvitationDerivedState(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	testCases := []struct {
		name       string
		invitation Invitation
		pending    bool
		expired    bool
		accepted   bool
		rejected   bool
	}{
		{
			name:       "pending",
			invitation: Invitation{ExpiresAt: future},
			pending:    true,
		},
		{
			name:       "expired",
			invitation: Invitation{ExpiresAt: past},
			expired:    true,
		},
		{
			name:       "accepted before expiry",
			invitation: Invitation{ExpiresAt: future, AcceptedAt: &now},
			accepted:   true,
		},
		{
			name:       "accepted after expiry stays accepted",
			invitation: Invitation{ExpiresAt: past, AcceptedAt: &now},
			accepted:   true,
		},
		{
			name:       "rejected",
			invitation: Invitation{ExpiresAt: future, RejectedAt: &now},
			rejected:   true,
		},
		{
			name:       "rejected after expiry is not expired",
			invitation: Invitation{ExpiresAt: past, RejectedAt: &now},
			rejected:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.invitation.IsPending(); got != tc.pending {
				t.Errorf("IsPending: expected %v, got %v", tc.pending, got)
			}
			if got := tc.invitation.IsExpired(); got != tc.expired {
				t.Errorf("IsExpired: expected %v, got %v", tc.expired, got)
			}
			if got := tc.invitation.IsAccepted(); got != tc.accepted {
				t.Errorf("IsAccepted: expected %v, got %v", tc.accepted, got)
			}
			if got := tc.invitation.IsRejected(); got != tc.rejected {
				t.Errorf("IsRejected: expected %v, got %v", tc.rejected, got)
			}
		})
	}
}
