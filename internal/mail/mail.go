// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/tracing"
	"github.com/sekeco/iam-service/internal/types"
)

type invitationPayload struct {
	To         string    `json:"to"`
	TenantName string    `json:"tenant_name"`
	Role       string    `json:"role"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// GatewayNotifier posts invitation emails to an internal mail gateway.
type GatewayNotifier struct {
	url    string
	client *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGatewayNotifier(url string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *GatewayNotifier {
	return &GatewayNotifier{
		url: url,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (n *GatewayNotifier) SendInvitation(ctx context.Context, tenant *types.Tenant, invitation *types.Invitation) error {
	ctx, span := n.tracer.Start(ctx, "mail.GatewayNotifier.SendInvitation")
	defer span.End()

	payload := invitationPayload{
		To:         invitation.Email,
		TenantName: tenant.Name,
		Role:       string(invitation.Role),
		Token:      invitation.Token,
		ExpiresAt:  invitation.ExpiresAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal invitation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/api/v0/mail/invitation", n.url), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach mail gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("mail gateway returned %s", resp.Status)
	}

	n.logger.Debugf("Dispatched invitation email to %s for tenant %s", invitation.Email, tenant.ID)
	return nil
}
