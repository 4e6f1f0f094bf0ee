package trm

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error { t.committed = true; return nil }
func (t *fakeTx) Rollback(context.Context) error { t.rolledBack = true; return nil }

type fakeDB struct {
	begun []pgx.TxOptions
	tx    *fakeTx
}

func (d *fakeDB) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	d.begun = append(d.begun, opts)
	d.tx = &fakeTx{}
	return d.tx, nil
}

func (d *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (d *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row { return nil }
func (d *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	db := &fakeDB{}
	m := New(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		if m.Conn(ctx) != db.tx {
			t.Fatalf("Conn must return the active transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !db.tx.committed || db.tx.rolledBack {
		t.Fatalf("expected commit only, got %+v", db.tx)
	}
}

func TestDo_RollsBackOnError(t *testing.T) {
	db := &fakeDB{}
	boom := errors.New("boom")

	err := New(db).Do(context.Background(), func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if db.tx.committed || !db.tx.rolledBack {
		t.Fatalf("expected rollback only, got %+v", db.tx)
	}
}

func TestDo_RollsBackOnPanic(t *testing.T) {
	db := &fakeDB{}

	defer func() {
		if recover() == nil {
			t.Fatalf("panic must propagate")
		}
		if !db.tx.rolledBack {
			t.Fatalf("expected rollback after panic")
		}
	}()
	_ = New(db).Do(context.Background(), func(context.Context) error { panic("boom") })
}

func TestDoReadOnly_NestedCallsJoin(t *testing.T) {
	db := &fakeDB{}
	m := New(db)

	err := m.DoReadOnly(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, func(context.Context) error { return nil })
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.begun) != 1 {
		t.Fatalf("expected one transaction, got %d", len(db.begun))
	}
	if db.begun[0].AccessMode != pgx.ReadOnly {
		t.Fatalf("expected read-only access mode, got %q", db.begun[0].AccessMode)
	}
}

func TestConn_WithoutTransactionUsesPool(t *testing.T) {
	db := &fakeDB{}
	if New(db).Conn(context.Background()) != db {
		t.Fatalf("expected pool outside a transaction")
	}
}
