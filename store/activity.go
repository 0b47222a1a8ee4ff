package store

import (
	"context"

	coreerrors "github.com/chronogonk/chronogonk/internal/errors"
)

// ActivityTotal is one row of an activity aggregation, ordered by count
// descending in every query that returns it.
type ActivityTotal struct {
	UserID       string
	Username     string
	MessageCount int64
}

// IncrementActivity is the request to bump a user's daily message counter.
// Day is a calendar day in the fixed reference clock (UTC), formatted
// YYYY-MM-DD.
type IncrementActivity struct {
	UserID   string
	Username string
	Day      string
}

// IncrementActivity adds one to the (user, day) counter, creating the row
// on first message and refreshing the last-seen username.
func (s *Store) IncrementActivity(ctx context.Context, increment *IncrementActivity) error {
	if increment.UserID == "" {
		return coreerrors.InvalidArgument("user id is required")
	}
	if increment.Day == "" {
		return coreerrors.InvalidArgument("day is required")
	}
	return s.driver.IncrementActivity(ctx, increment)
}

// SumActivity sums message counts per user for days >= sinceDay, ordered
// by total descending.
func (s *Store) SumActivity(ctx context.Context, sinceDay string) ([]*ActivityTotal, error) {
	return s.driver.SumActivity(ctx, sinceDay)
}

// ActivityForDay returns per-user counts for a single day, ordered by
// count descending.
func (s *Store) ActivityForDay(ctx context.Context, day string) ([]*ActivityTotal, error) {
	return s.driver.ActivityForDay(ctx, day)
}

// PruneActivity deletes counters older than the retention horizon.
func (s *Store) PruneActivity(ctx context.Context, beforeDay string) error {
	return s.driver.PruneActivity(ctx, beforeDay)
}
