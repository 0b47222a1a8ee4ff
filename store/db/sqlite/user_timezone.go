package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/chronogonk/chronogonk/store"
)

func (d *DB) UpsertUserTimezone(ctx context.Context, upsert *store.UpsertUserTimezone) (*store.UserTimezone, error) {
	nowTs := time.Now().Unix()
	stmt := `
		INSERT INTO user_timezone (user_id, username, timezone, created_ts, updated_ts)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			username = excluded.username,
			timezone = excluded.timezone,
			updated_ts = excluded.updated_ts`
	if _, err := d.db.ExecContext(ctx, stmt, upsert.UserID, upsert.Username, upsert.Timezone, nowTs, nowTs); err != nil {
		return nil, errors.Wrap(err, "failed to upsert user timezone")
	}
	return d.GetUserTimezone(ctx, upsert.UserID)
}

func (d *DB) GetUserTimezone(ctx context.Context, userID string) (*store.UserTimezone, error) {
	userTimezone := &store.UserTimezone{}
	err := d.db.QueryRowContext(ctx, `
		SELECT user_id, username, timezone, created_ts, updated_ts
		FROM user_timezone
		WHERE user_id = ?`, userID,
	).Scan(
		&userTimezone.UserID,
		&userTimezone.Username,
		&userTimezone.Timezone,
		&userTimezone.CreatedTs,
		&userTimezone.UpdatedTs,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user timezone")
	}
	return userTimezone, nil
}

func (d *DB) ListUserTimezones(ctx context.Context) ([]*store.UserTimezone, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT user_id, username, timezone, created_ts, updated_ts
		FROM user_timezone
		ORDER BY username ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user timezones")
	}
	defer rows.Close()

	list := []*store.UserTimezone{}
	for rows.Next() {
		userTimezone := &store.UserTimezone{}
		if err := rows.Scan(
			&userTimezone.UserID,
			&userTimezone.Username,
			&userTimezone.Timezone,
			&userTimezone.CreatedTs,
			&userTimezone.UpdatedTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan user timezone")
		}
		list = append(list, userTimezone)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate user timezones")
	}
	return list, nil
}

func (d *DB) DeleteUserTimezone(ctx context.Context, userID string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM user_timezone WHERE user_id = ?`, userID); err != nil {
		return errors.Wrap(err, "failed to delete user timezone")
	}
	return nil
}
