// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sekeco/iam-service/internal/authorization"
	"github.com/sekeco/iam-service/internal/config"
	"github.com/sekeco/iam-service/internal/db"
	"github.com/sekeco/iam-service/internal/identity"
	"github.com/sekeco/iam-service/internal/kratos"
	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/mail"
	"github.com/sekeco/iam-service/internal/monitoring/prometheus"
	"github.com/sekeco/iam-service/internal/openfga"
	"github.com/sekeco/iam-service/internal/storage"
	"github.com/sekeco/iam-service/internal/tracing"
	"github.com/sekeco/iam-service/pkg/invitations"
	"github.com/sekeco/iam-service/pkg/tenant"
	"github.com/sekeco/iam-service/pkg/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("iam-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	authzConfig := authorization.Config{
		BypassRoles:         specs.SuperAdminRoles,
		PanelRoles:          specs.PanelRoles,
		AllowedEmailDomains: specs.AllowedEmailDomains,
	}

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		authorizer = authorization.NewAuthorizer(ofga, authzConfig, tracer, monitor, logger)
		logger.Info("Authorization is enabled")
		if authorizer.ValidateModel(context.Background()) != nil {
			panic("Invalid authorization model provided")
		}
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			authzConfig,
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	var kratosClient kratos.ClientInterface
	if specs.KratosAdminURL != "" {
		kratosClient = kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)
	} else {
		kratosClient = kratos.NewNoopClient()
		logger.Info("Using noop kratos client, identity lookups are disabled")
	}

	var notifier mail.NotifierInterface
	if specs.MailGatewayURL != "" {
		notifier = mail.NewGatewayNotifier(specs.MailGatewayURL, tracer, monitor, logger)
	} else {
		notifier = mail.NewNoopNotifier()
		logger.Info("Using noop mail notifier, invitation emails are disabled")
	}

	tenantService := tenant.NewService(
		s,
		dbClient,
		authorizer,
		kratosClient,
		tracer,
		monitor,
		logger,
	)

	invitationsService := invitations.NewService(
		s,
		dbClient,
		authorizer,
		kratosClient,
		notifier,
		logger.Security(),
		specs.InvitationLifetime,
		specs.EnforceActiveTenant,
		tracer,
		monitor,
		logger,
	)

	identityMiddleware := identity.NewMiddleware(tracer, monitor, logger)
	tenantAPI := tenant.NewAPI(tenantService, tracer, monitor, logger)
	invitationsAPI := invitations.NewAPI(invitationsService, tracer, monitor, logger)

	router := web.NewRouter(
		tenantAPI,
		invitationsAPI,
		identityMiddleware,
		dbClient,
		authorizer,
		logger.Security(),
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
