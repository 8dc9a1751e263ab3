// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"

	ory "github.com/ory/client-go"
)

// NoopClient is used when no identity backend is configured. Lookups resolve
// to nothing, which keeps invitation flows working against raw email inputs.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	return "", nil
}

func (c *NoopClient) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	return nil, nil
}

func (c *NoopClient) GetIdentityEmail(ctx context.Context, id string) (string, error) {
	return "", nil
}
