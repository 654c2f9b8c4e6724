package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/igorvolkov/taskmaster/internal/db"
)

// FailOnNthExecUoW runs real transactions but fails the Nth write statement
// with Err. Reads pass through untouched. Rollback tests use it to prove
// that multi-write operations leave no partial state behind.
//
// Write statements are counted per WithinTx call, starting at 1.
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
	faulty := &execCounter{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if err := fn(ctx, faulty); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type execCounter struct {
	db.DBTX
	seen   int
	failOn int
	err    error
}

func (c *execCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.seen++
	if c.seen == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
