package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/repository"
	"github.com/igorvolkov/taskmaster/internal/testutil"
)

func newUserService(t *testing.T) UserService {
	t.Helper()
	return NewUserService(repository.NewSQLiteUserRepo(testutil.NewTestDB(t)), fixedClock)
}

func TestUserCurrentReturnsDefaultWhenUnset(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	u, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, domain.RoleMember, u.Role)
	assert.False(t, u.OnboardingDone)

	// The default is not persisted; a second call yields a fresh profile.
	again, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, u.ID, again.ID)
}

func TestUserSaveAndReload(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	u, err := svc.Current(ctx)
	require.NoError(t, err)
	u.FirstName = "Ada"
	u.LastName = "Lovelace"
	require.NoError(t, svc.Save(ctx, u))

	loaded, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, loaded.ID)
	assert.Equal(t, "Ada Lovelace", loaded.FullName())
	assert.Equal(t, fixedNow, loaded.LastActive)
}

func TestUserCompleteOnboardingPersists(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	u, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.CompleteOnboarding(ctx, u))

	loaded, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.OnboardingDone)
}
