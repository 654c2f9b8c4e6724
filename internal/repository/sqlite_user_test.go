package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/testutil"
)

func TestSQLiteUserRepo_GetWhenEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(database)

	u, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u, "no profile saved yet")
}

func TestSQLiteUserRepo_UpsertRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(database)
	ctx := context.Background()

	u := testutil.NewTestUser("Sarah", "Johnson")
	u.Role = domain.RoleManager
	u.Skills = []string{"planning", "strategy"}
	u.Preferences.PreferredView = "kanban"
	u.Stats.TasksCompleted = 7
	require.NoError(t, repo.Upsert(ctx, u))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Sarah Johnson", got.FullName())
	assert.Equal(t, domain.RoleManager, got.Role)
	assert.Equal(t, "kanban", got.Preferences.PreferredView)
	assert.Equal(t, 7, got.Stats.TasksCompleted)
	assert.Equal(t, []string{"planning", "strategy"}, got.Skills)
	assert.False(t, got.OnboardingDone)
}

func TestSQLiteUserRepo_UpsertReplaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(database)
	ctx := context.Background()

	u := testutil.NewTestUser("Old", "Name")
	require.NoError(t, repo.Upsert(ctx, u))

	u.FirstName = "New"
	u.OnboardingDone = true
	require.NoError(t, repo.Upsert(ctx, u))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", got.FirstName)
	assert.True(t, got.OnboardingDone)
}
