// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/sekeco/iam-service/internal/logging"
)

var errNoConns = errors.New("no connections available")

// beginFailDriver refuses every connection, so BeginTx can never succeed.
type beginFailDriver struct{}

func (beginFailDriver) Open(string) (driver.Conn, error) {
	return nil, errNoConns
}

func init() {
	sql.Register("begin-fail", beginFailDriver{})
}

// poolRecorder stands in for the pooled runner and counts statements that
// reach it.
type poolRecorder struct {
	calls int
}

func (p *poolRecorder) Exec(string, ...interface{}) (sql.Result, error) {
	p.calls++
	return nil, errors.New("pooled runner used")
}

func (p *poolRecorder) Query(string, ...interface{}) (*sql.Rows, error) {
	p.calls++
	return nil, errors.New("pooled runner used")
}

func (p *poolRecorder) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	p.calls++
	return nil, errors.New("pooled runner used")
}

func (p *poolRecorder) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	p.calls++
	return nil, errors.New("pooled runner used")
}

func newFailingClient(t *testing.T) (*DBClient, *poolRecorder) {
	t.Helper()

	failDB, err := sql.Open("begin-fail", "")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = failDB.Close() })

	pool := &poolRecorder{}
	return &DBClient{
		db:       failDB,
		dbRunner: pool,
		logger:   logging.NewNoopLogger(),
	}, pool
}

func TestStatement_BeginFailureRefusesStatements(t *testing.T) {
	client, pool := newFailingClient(t)

	ctx := contextWithTx(context.Background(), &lazyTx{db: client.db, logger: client.logger})

	_, err := client.Statement(ctx).
		Update("tenants").
		Set("name", "acme").
		Where(sq.Eq{"id": "tenant-1"}).
		ExecContext(ctx)

	if !errors.Is(err, errNoConns) {
		t.Fatalf("expected the begin failure to surface, got %v", err)
	}
	if pool.calls != 0 {
		t.Fatalf("expected no statements on the pooled runner, got %d", pool.calls)
	}
}

func TestStatement_BeginFailureRefusesQueryRow(t *testing.T) {
	client, pool := newFailingClient(t)

	ctx := contextWithTx(context.Background(), &lazyTx{db: client.db, logger: client.logger})

	var id string
	err := client.Statement(ctx).
		Select("id").
		From("tenants").
		Where(sq.Eq{"slug": "acme"}).
		QueryRowContext(ctx).
		Scan(&id)

	if !errors.Is(err, errNoConns) {
		t.Fatalf("expected the begin failure to surface, got %v", err)
	}
	if pool.calls != 0 {
		t.Fatalf("expected no statements on the pooled runner, got %d", pool.calls)
	}
}

func TestWithTx_BeginFailureFailsTheFlow(t *testing.T) {
	client, pool := newFailingClient(t)

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := client.Statement(ctx).
			Update("tenant_invitations").
			Set("accepted_at", "now").
			Where(sq.Eq{"id": "inv-1"}).
			ExecContext(ctx); err != nil {
			return err
		}
		t.Fatal("expected the first statement to fail")
		return nil
	})

	if !errors.Is(err, errNoConns) {
		t.Fatalf("expected the begin failure to surface, got %v", err)
	}
	if pool.calls != 0 {
		t.Fatalf("expected no statements on the pooled runner, got %d", pool.calls)
	}
}
