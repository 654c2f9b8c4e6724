package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/igorvolkov/taskmaster/internal/db"
	"github.com/igorvolkov/taskmaster/internal/domain"
)

// SeedSampleData inserts the sample dataset when the store is empty, so a
// first launch always has something to show. Tasks and projects are seeded
// independently: wiping one table does not reset the other. Runs in a single
// transaction.
func SeedSampleData(ctx context.Context, uow db.UnitOfWork, now time.Time) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks := NewSQLiteTaskRepo(tx)
		projects := NewSQLiteProjectRepo(tx)

		n, err := tasks.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			for _, t := range domain.SampleTasks(now) {
				if err := tasks.Create(ctx, t); err != nil {
					return fmt.Errorf("seeding sample task: %w", err)
				}
			}
		}

		n, err = projects.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			for _, p := range domain.SampleProjects(now) {
				if err := projects.Create(ctx, p); err != nil {
					return fmt.Errorf("seeding sample project: %w", err)
				}
			}
		}

		return nil
	})
}
