package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/testutil"
)

func TestSQLiteProjectRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	deadline := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	p := testutil.NewTestProject("Platform rewrite",
		testutil.WithDeadline(deadline),
		testutil.WithProjectType(domain.ProjectDevelopment),
		testutil.WithBudget(50000, 12000),
	)
	p.TeamMembers = []string{"u-1", "u-2"}
	p.Tags = []string{"backend"}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Platform rewrite", got.Name)
	assert.Equal(t, domain.ProjectActive, got.Status)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(deadline))
	assert.Equal(t, []string{"u-1", "u-2"}, got.TeamMembers)
	require.NotNil(t, got.EstimatedBudget)
	assert.Equal(t, 50000.0, *got.EstimatedBudget)
	require.NotNil(t, got.ActualBudget)
	assert.Equal(t, 12000.0, *got.ActualBudget)
	assert.Nil(t, got.EndDate)
}

func TestSQLiteProjectRepo_GetByID_Absent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)

	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteProjectRepo_UpdateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("First")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("Second")))

	p.Status = domain.ProjectOnHold
	p.ActualHours = 12
	require.NoError(t, repo.Update(ctx, p))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectOnHold, got.Status)
	assert.Equal(t, 12.0, got.ActualHours)
}

func TestSQLiteProjectRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Doomed")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
