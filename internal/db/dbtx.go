package db

import (
	"context"
	"database/sql"
)

// DBTX is what the SQLite repositories need from a connection. Both the pool
// and a transaction satisfy it, so the same repository code runs inside
// UnitOfWork.WithinTx and outside it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
