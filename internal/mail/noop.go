// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/sekeco/iam-service/internal/types"
)

// NoopNotifier drops all outgoing mail. Used when no gateway is configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) SendInvitation(ctx context.Context, tenant *types.Tenant, invitation *types.Invitation) error {
	return nil
}
