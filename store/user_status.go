package store

import (
	"context"
	"time"

	coreerrors "github.com/chronogonk/chronogonk/internal/errors"
)

// StatusKind is the three-value availability enumeration.
type StatusKind string

const (
	StatusFree         StatusKind = "FREE"
	StatusBusy         StatusKind = "BUSY"
	StatusDoNotDisturb StatusKind = "DO_NOT_DISTURB"
)

// IsValid reports whether the kind is one of the allowed values.
func (k StatusKind) IsValid() bool {
	switch k {
	case StatusFree, StatusBusy, StatusDoNotDisturb:
		return true
	}
	return false
}

// UserStatus is the object representing a member's transient availability.
// At most one active status exists per user.
type UserStatus struct {
	UserID    string
	Kind      StatusKind
	Note      string
	ExpiresTs *int64 // nil = never expires
	CreatedTs int64
}

// Expired reports whether the record is logically deleted at now.
func (s *UserStatus) Expired(now time.Time) bool {
	return s.ExpiresTs != nil && now.Unix() > *s.ExpiresTs
}

// UpsertUserStatus is the upsert request for a status. A prior status for
// the same user is overwritten atomically; no history is kept.
type UpsertUserStatus struct {
	UserID    string
	Kind      StatusKind
	Note      string
	ExpiresTs *int64
}

// UpsertUserStatus sets or replaces a user's availability status.
func (s *Store) UpsertUserStatus(ctx context.Context, upsert *UpsertUserStatus) (*UserStatus, error) {
	if upsert.UserID == "" {
		return nil, coreerrors.InvalidArgument("user id is required")
	}
	if !upsert.Kind.IsValid() {
		return nil, coreerrors.InvalidArgument("status kind must be FREE, BUSY or DO_NOT_DISTURB")
	}
	return s.driver.UpsertUserStatus(ctx, upsert)
}

// GetUserStatus returns the user's active status, or nil when absent. An
// expired record is deleted on the way out and reported absent (lazy
// eviction); no error is raised for that case.
func (s *Store) GetUserStatus(ctx context.Context, userID string) (*UserStatus, error) {
	status, err := s.driver.GetUserStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, nil
	}
	if status.Expired(time.Now()) {
		if err := s.driver.DeleteUserStatus(ctx, userID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return status, nil
}

// DeleteUserStatus clears a user's status.
func (s *Store) DeleteUserStatus(ctx context.Context, userID string) error {
	return s.driver.DeleteUserStatus(ctx, userID)
}

// SweepExpiredStatuses bulk-deletes every status whose expiry is in the
// past. Invoked before listing operations; there is no background timer.
func (s *Store) SweepExpiredStatuses(ctx context.Context, now time.Time) error {
	return s.driver.DeleteExpiredStatuses(ctx, now.Unix())
}
