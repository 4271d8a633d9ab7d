package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/punchclock/internal/db"
)

// FailOnNthExecUoW behaves like the SQLite unit of work but makes the FailOn-th
// write (counted from 1) inside the transaction return Err. Reads are not
// counted. Use it to prove multi-write use cases leave nothing behind.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	return db.RunInTx(ctx, tx, &countingExec{DBTX: tx, failOn: u.FailOn, err: u.Err}, fn)
}

type countingExec struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (c *countingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.writes++
	if c.writes == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
