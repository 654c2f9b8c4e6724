package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorvolkov/taskmaster/internal/testutil"
)

func TestSeedSampleData_PopulatesEmptyStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, SeedSampleData(ctx, uow, now))

	tasks, err := NewSQLiteTaskRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)

	projects, err := NewSQLiteProjectRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 4)
}

func TestSeedSampleData_SkipsNonEmptyStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	existing := testutil.NewTestTask("Already here")
	require.NoError(t, NewSQLiteTaskRepo(database).Create(ctx, existing))

	require.NoError(t, SeedSampleData(ctx, uow, time.Now().UTC()))

	tasks, err := NewSQLiteTaskRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1, "existing data is never overwritten")

	// Projects table was empty, so projects still seed.
	projects, err := NewSQLiteProjectRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 4)
}

func TestSeedSampleData_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: injected}

	err := SeedSampleData(ctx, uow, time.Now().UTC())
	require.ErrorIs(t, err, injected)

	n, err := NewSQLiteTaskRepo(database).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "partial seed must roll back")
}
