// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/sekeco/iam-service/internal/authorization"
	"github.com/sekeco/iam-service/internal/config"
	"github.com/sekeco/iam-service/internal/db"
	"github.com/sekeco/iam-service/internal/kratos"
	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/mail"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/openfga"
	"github.com/sekeco/iam-service/internal/storage"
	"github.com/sekeco/iam-service/internal/tracing"
	"github.com/sekeco/iam-service/pkg/invitations"
	"github.com/spf13/cobra"
)

// cleanupInvitationsCmd sweeps invitations that expired without a decision.
// It is meant to run periodically, e.g. from a cron job.
var cleanupInvitationsCmd = &cobra.Command{
	Use:   "cleanup-invitations",
	Short: "Delete expired pending invitations",
	Long:  `Delete invitations whose expiry passed without being accepted or rejected`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cleanupInvitations(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(cleanupInvitationsCmd)
}

func cleanupInvitations(cmd *cobra.Command) error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := monitoring.NewNoopMonitor()
	tracer := tracing.NewNoopTracer()

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	authorizer := authorization.NewAuthorizer(
		openfga.NewNoopClient(tracer, monitor, logger),
		authorization.Config{},
		tracer,
		monitor,
		logger,
	)

	service := invitations.NewService(
		s,
		dbClient,
		authorizer,
		kratos.NewNoopClient(),
		mail.NewNoopNotifier(),
		logger.Security(),
		specs.InvitationLifetime,
		specs.EnforceActiveTenant,
		tracer,
		monitor,
		logger,
	)

	deleted, err := service.CleanupExpired(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to clean up expired invitations: %v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired invitations\n", deleted)
	return nil
}
