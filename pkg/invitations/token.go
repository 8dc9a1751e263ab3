// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	tokenLength  = 64
	tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// generateToken returns a random alphanumeric invitation token. Tokens are
// URL-safe so they can travel in signed accept/reject links unescaped.
func generateToken() (string, error) {
	max := big.NewInt(int64(len(tokenCharset)))
	buf := make([]byte, tokenLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[i] = tokenCharset[n.Int64()]
	}
	return string(buf), nil
}
