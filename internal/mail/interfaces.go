// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/sekeco/iam-service/internal/types"
)

// NotifierInterface delivers invitation emails. Delivery failures are
// surfaced to callers but must never abort the surrounding write.
type NotifierInterface interface {
	SendInvitation(ctx context.Context, tenant *types.Tenant, invitation *types.Invitation) error
}
