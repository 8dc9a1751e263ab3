// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"strings"
	"testing"
)

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		token, err := generateToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(token) != tokenLength {
			t.Fatalf("expected %d characters, got %d", tokenLength, len(token))
		}
		for _, c := range token {
			if !strings.ContainsRune(tokenCharset, c) {
				t.Fatalf("unexpected character %q in token", c)
			}
		}
		if seen[token] {
			t.Fatal("duplicate token generated")
		}
		seen[token] = true
	}
}
