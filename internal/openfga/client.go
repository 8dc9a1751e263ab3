// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/sekeco/iam-service/internal/logging"
	"github.com/sekeco/iam-service/internal/monitoring"
	"github.com/sekeco/iam-service/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg *Config) *Client {
	fgaConfig := client.ClientConfiguration{
		Configuration: fga.Configuration{
			ApiUrl: fmt.Sprintf("%s://%s", cfg.ApiScheme, cfg.ApiHost),
			Debug:  cfg.Debug,
		},
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
	}

	if cfg.ApiToken != "" {
		fgaConfig.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		}
	}

	c, err := client.NewSdkClient(&fgaConfig)
	if err != nil {
		cfg.Logger.Fatalf("failed to create openfga client: %v", err)
	}

	return &Client{
		c:       c,
		tracer:  cfg.Tracer,
		monitor: cfg.Monitor,
		logger:  cfg.Logger,
	}
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	for _, t := range contextualTuples {
		body.ContextualTuples = append(body.ContextualTuples, client.ClientContextualTupleKey{
			User:     t.User,
			Relation: t.Relation,
			Object:   t.Object,
		})
	}

	resp, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		return false, fmt.Errorf("openfga check failed: %w", err)
	}

	return resp.GetAllowed(), nil
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	resp, err := c.c.ListObjects(ctx).Body(client.ClientListObjectsRequest{
		User:     user,
		Relation: relation,
		Type:     objectType,
	}).Execute()
	if err != nil {
		return nil, fmt.Errorf("openfga list objects failed: %w", err)
	}

	return resp.GetObjects(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.Write(ctx).Body(client.ClientWriteRequest{
		Writes: []client.ClientTupleKey{
			{User: user, Relation: relation, Object: object},
		},
	}).Execute()
	if err != nil {
		return fmt.Errorf("openfga write tuple failed: %w", err)
	}

	return nil
}

// CreateStore provisions a new store and returns its ID.
func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	resp, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	if err != nil {
		return "", fmt.Errorf("openfga create store failed: %w", err)
	}

	return resp.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) {
	_, span := c.tracer.Start(ctx, "openfga.Client.SetStoreID")
	defer span.End()

	c.c.SetStoreId(storeID)
}

// WriteModel writes an authorization model to the store and returns the new
// model ID.
func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	resp, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		return "", fmt.Errorf("openfga write model failed: %w", err)
	}

	return resp.GetAuthorizationModelId(), nil
}

// CompareModel reports whether the store's current model matches the given
// one. Only the schema version and type definitions participate in the
// comparison, the model ID is expected to differ.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	resp, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		return false, fmt.Errorf("openfga read model failed: %w", err)
	}

	current := resp.GetAuthorizationModel()
	if current.SchemaVersion != model.SchemaVersion {
		return false, nil
	}

	want, err := json.Marshal(model.TypeDefinitions)
	if err != nil {
		return false, err
	}
	got, err := json.Marshal(current.TypeDefinitions)
	if err != nil {
		return false, err
	}

	return bytes.Equal(want, got), nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	_, err := c.c.Write(ctx).Body(client.ClientWriteRequest{
		Deletes: []client.ClientTupleKeyWithoutCondition{
			{User: user, Relation: relation, Object: object},
		},
	}).Execute()
	if err != nil {
		return fmt.Errorf("openfga delete tuple failed: %w", err)
	}

	return nil
}
