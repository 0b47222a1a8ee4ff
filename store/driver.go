package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that a store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	Migrate(ctx context.Context) error

	// UserTimezone model related methods.
	UpsertUserTimezone(ctx context.Context, upsert *UpsertUserTimezone) (*UserTimezone, error)
	GetUserTimezone(ctx context.Context, userID string) (*UserTimezone, error)
	ListUserTimezones(ctx context.Context) ([]*UserTimezone, error)
	DeleteUserTimezone(ctx context.Context, userID string) error

	// UserStatus model related methods.
	UpsertUserStatus(ctx context.Context, upsert *UpsertUserStatus) (*UserStatus, error)
	GetUserStatus(ctx context.Context, userID string) (*UserStatus, error)
	DeleteUserStatus(ctx context.Context, userID string) error
	DeleteExpiredStatuses(ctx context.Context, nowTs int64) error

	// Activity model related methods.
	IncrementActivity(ctx context.Context, increment *IncrementActivity) error
	SumActivity(ctx context.Context, sinceDay string) ([]*ActivityTotal, error)
	ActivityForDay(ctx context.Context, day string) ([]*ActivityTotal, error)
	PruneActivity(ctx context.Context, beforeDay string) error
}
