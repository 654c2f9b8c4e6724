package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/repository"
)

type userService struct {
	users repository.UserRepo
	now   Clock
}

func NewUserService(users repository.UserRepo, now Clock) UserService {
	return &userService{users: users, now: clockOrNow(now)}
}

// Current returns the stored profile, or a fresh default one when the app
// has never been set up. The default is not persisted until saved.
func (s *userService) Current(ctx context.Context) (*domain.User, error) {
	u, err := s.users.Get(ctx)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	now := s.now()
	return &domain.User{
		ID:          uuid.New().String(),
		Role:        domain.RoleMember,
		Status:      domain.UserActive,
		Timezone:    "UTC",
		JoinDate:    now,
		LastActive:  now,
		Preferences: domain.DefaultPreferences(),
	}, nil
}

func (s *userService) Save(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.LastActive = s.now()
	return s.users.Upsert(ctx, u)
}

func (s *userService) CompleteOnboarding(ctx context.Context, u *domain.User) error {
	u.OnboardingDone = true
	return s.Save(ctx, u)
}
