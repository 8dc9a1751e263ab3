// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit-grade events on a dedicated named logger so they
// can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFail(userID, ability string) {
	s.l.Warn("authorization denied",
		zap.String("event", "authz_fail"),
		zap.String("user_id", userID),
		zap.String("ability", ability),
	)
}

func (s *SecurityLogger) InvitationIssued(tenantID, email string) {
	s.l.Info("invitation issued",
		zap.String("event", "invitation_issued"),
		zap.String("tenant_id", tenantID),
		zap.String("email", email),
	)
}
