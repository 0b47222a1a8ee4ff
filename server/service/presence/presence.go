// Package presence reconciles stored availability statuses with derived
// sleep state into a single ranked roster.
//
// Asleep is a display override, not stored state: a sleeping user keeps
// whatever explicit status they set, but always ranks after everyone
// awake.
package presence

import (
	"context"
	"sort"
	"time"

	"github.com/chronogonk/chronogonk/internal/timezone"
	"github.com/chronogonk/chronogonk/server/service/availability"
	"github.com/chronogonk/chronogonk/store"
)

// Entry is one user's merged availability view.
type Entry struct {
	UserID      string
	Username    string
	Timezone    string
	LocalTime   time.Time
	Period      availability.Period
	Asleep      bool
	SleepReason availability.SleepReason
	// Status is the explicit stored status, nil when none is active. It is
	// preserved even while the user reads as asleep.
	Status *store.UserStatus
	// UntilAwake is a wake estimate, zero when not asleep.
	UntilAwake time.Duration
}

// statusRank orders explicit statuses best-first within a sleep group.
// Absence of a status ranks last among the awake.
func statusRank(s *store.UserStatus) int {
	if s == nil {
		return 3
	}
	switch s.Kind {
	case store.StatusFree:
		return 0
	case store.StatusBusy:
		return 1
	case store.StatusDoNotDisturb:
		return 2
	}
	return 3
}

// Rank sorts entries in place: awake before asleep, then explicit status
// severity, ties broken by local hour ascending. The same comparator runs
// inside the asleep group.
func Rank(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Asleep != b.Asleep {
			return !a.Asleep
		}
		ra, rb := statusRank(a.Status), statusRank(b.Status)
		if ra != rb {
			return ra < rb
		}
		return a.LocalTime.Hour() < b.LocalTime.Hour()
	})
}

// Service builds rosters from the record store.
type Service struct {
	store *store.Store
}

// NewService creates a presence service.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// BuildRoster sweeps expired statuses, then merges every registered user's
// timezone, explicit status and derived sleep state into a ranked list.
func (s *Service) BuildRoster(ctx context.Context, now time.Time) ([]*Entry, error) {
	if err := s.store.SweepExpiredStatuses(ctx, now); err != nil {
		return nil, err
	}

	users, err := s.store.ListUserTimezones(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, len(users))
	for _, user := range users {
		loc, err := timezone.Parse(user.Timezone)
		if err != nil {
			// A zone that validated at write time should still resolve;
			// skip rather than fail the whole roster if tzdata changed.
			continue
		}

		status, err := s.store.GetUserStatus(ctx, user.UserID)
		if err != nil {
			return nil, err
		}

		sleep := availability.SleepCheck(loc, now)
		entry := &Entry{
			UserID:      user.UserID,
			Username:    user.Username,
			Timezone:    user.Timezone,
			LocalTime:   sleep.LocalTime,
			Period:      availability.PeriodOf(loc, now),
			Asleep:      sleep.Asleep,
			SleepReason: sleep.Reason,
			Status:      status,
		}
		if until, asleep := availability.UntilAwake(loc, now); asleep {
			entry.UntilAwake = until
		}
		entries = append(entries, entry)
	}

	Rank(entries)
	return entries, nil
}
