package notify

import (
	"context"
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/repository"
)

// Scheduler registers and cancels reminders keyed by the referenced task or
// project id. Scheduling twice for the same ref replaces the fire time.
type Scheduler interface {
	Schedule(ctx context.Context, refID string, kind domain.ReminderKind, fireAt time.Time) error
	Cancel(ctx context.Context, refID string) error
	Due(ctx context.Context, now time.Time) ([]*domain.Reminder, error)
}

// StoreScheduler persists reminders through a ReminderRepo so they survive
// process restarts. Delivery is the caller's concern; Due only reports what
// has come up.
type StoreScheduler struct {
	reminders repository.ReminderRepo
}

func NewStoreScheduler(reminders repository.ReminderRepo) *StoreScheduler {
	return &StoreScheduler{reminders: reminders}
}

func (s *StoreScheduler) Schedule(ctx context.Context, refID string, kind domain.ReminderKind, fireAt time.Time) error {
	return s.reminders.Upsert(ctx, &domain.Reminder{
		RefID:     refID,
		Kind:      kind,
		FireAt:    fireAt,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *StoreScheduler) Cancel(ctx context.Context, refID string) error {
	return s.reminders.Delete(ctx, refID)
}

func (s *StoreScheduler) Due(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	return s.reminders.ListDue(ctx, now)
}

// NoopScheduler drops everything. Used when reminders are disabled.
type NoopScheduler struct{}

func (NoopScheduler) Schedule(context.Context, string, domain.ReminderKind, time.Time) error {
	return nil
}
func (NoopScheduler) Cancel(context.Context, string) error { return nil }
func (NoopScheduler) Due(context.Context, time.Time) ([]*domain.Reminder, error) {
	return nil, nil
}
