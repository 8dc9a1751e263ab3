// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
)

func TestInvitationPredicates(t *testing.T) {
	base := sq.Eq{"tenant_id": "tenant-1"}

	t.Run("undecided carries no expiry clause", func(t *testing.T) {
		query, _, err := undecidedPredicate(base).ToSql()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(query, "expires_at") {
			t.Errorf("expected no expiry clause, got %q", query)
		}
		if !strings.Contains(query, "accepted_at IS NULL") || !strings.Contains(query, "rejected_at IS NULL") {
			t.Errorf("expected undecided clauses, got %q", query)
		}
	})

	t.Run("pending requires a future expiry", func(t *testing.T) {
		query, _, err := pendingPredicate(base).ToSql()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(query, "expires_at > ") {
			t.Errorf("expected a future-expiry clause, got %q", query)
		}
	})

	t.Run("expired requires a past expiry on undecided rows", func(t *testing.T) {
		query, _, err := expiredPredicate(base).ToSql()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(query, "expires_at <= ") {
			t.Errorf("expected a past-expiry clause, got %q", query)
		}
		if !strings.Contains(query, "accepted_at IS NULL") || !strings.Contains(query, "rejected_at IS NULL") {
			t.Errorf("expected undecided clauses, got %q", query)
		}
	})
}
