package store

import (
	"context"

	coreerrors "github.com/chronogonk/chronogonk/internal/errors"
	"github.com/chronogonk/chronogonk/internal/timezone"
)

// UserTimezone is the object representing a member's registered timezone.
type UserTimezone struct {
	UserID    string
	Username  string
	Timezone  string
	CreatedTs int64
	UpdatedTs int64
}

// UpsertUserTimezone is the upsert request for a timezone registration.
// Writes are keyed by UserID; an existing record is overwritten.
type UpsertUserTimezone struct {
	UserID   string
	Username string
	Timezone string
}

// UpsertUserTimezone registers or updates a member's timezone. The zone
// identifier is validated before anything touches storage.
func (s *Store) UpsertUserTimezone(ctx context.Context, upsert *UpsertUserTimezone) (*UserTimezone, error) {
	if upsert.UserID == "" {
		return nil, coreerrors.InvalidArgument("user id is required")
	}
	if _, err := timezone.Parse(upsert.Timezone); err != nil {
		return nil, coreerrors.InvalidTimezone(upsert.Timezone, err)
	}
	return s.driver.UpsertUserTimezone(ctx, upsert)
}

// GetUserTimezone returns the registration for a user, or nil when absent.
func (s *Store) GetUserTimezone(ctx context.Context, userID string) (*UserTimezone, error) {
	return s.driver.GetUserTimezone(ctx, userID)
}

// ListUserTimezones lists all registrations ordered by username.
func (s *Store) ListUserTimezones(ctx context.Context) ([]*UserTimezone, error) {
	return s.driver.ListUserTimezones(ctx)
}

// DeleteUserTimezone removes a registration along with the user's status.
// The cascade lives here rather than in a schema constraint; a status may
// exist without a registration, but never outlives an explicit wipe.
func (s *Store) DeleteUserTimezone(ctx context.Context, userID string) error {
	if err := s.driver.DeleteUserTimezone(ctx, userID); err != nil {
		return err
	}
	return s.driver.DeleteUserStatus(ctx, userID)
}
