package trm

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	Conn(ctx context.Context) Querier
}

// Querier is the query surface shared by pgx.Tx and *pgxpool.Pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Beginner starts transactions. *pgxpool.Pool satisfies it.
type Beginner interface {
	Querier
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

var ErrInvalidTx = errors.New("invalid transaction type in context")

type (
	txKey     struct{}
	txOptsKey struct{}
)

// Manager runs functions inside a pgx transaction stored in the context.
// Nested calls join the outer transaction.
type Manager struct {
	db Beginner
}

var _ Beginner = (*pgxpool.Pool)(nil)

// New returns a new Transaction Manager
func New(db Beginner) *Manager {
	return &Manager{db: db}
}

// Do runs fn in the transaction found in ctx or in a new one. A new
// transaction is committed when fn succeeds and rolled back when it fails
// or panics.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if existing := ctx.Value(txKey{}); existing != nil {
		if _, ok := existing.(pgx.Tx); !ok {
			return ErrInvalidTx
		}
		return fn(ctx)
	}

	opts, _ := ctx.Value(txOptsKey{}).(pgx.TxOptions)
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to start new transaction: %w", err)
	}
	ctx = context.WithValue(ctx, txKey{}, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = fmt.Errorf("failed to rollback tx: %v (original error: %w)", rbErr, err)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("failed to commit tx: %w", commitErr)
		}
	}()

	return fn(ctx)
}

// DoReadOnly is Do with a read-only transaction.
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(WithOptions(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}), fn)
}

// Conn returns the transaction stored in ctx by Do, or the pool itself.
func (m *Manager) Conn(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return m.db
}

// WithOptions sets the options of the next transaction Do starts.
func WithOptions(ctx context.Context, opts pgx.TxOptions) context.Context {
	return context.WithValue(ctx, txOptsKey{}, opts)
}
