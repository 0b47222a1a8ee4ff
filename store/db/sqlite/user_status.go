package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/chronogonk/chronogonk/store"
)

func (d *DB) UpsertUserStatus(ctx context.Context, upsert *store.UpsertUserStatus) (*store.UserStatus, error) {
	nowTs := time.Now().Unix()
	stmt := `
		INSERT INTO user_status (user_id, kind, note, expires_ts, created_ts)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			kind = excluded.kind,
			note = excluded.note,
			expires_ts = excluded.expires_ts,
			created_ts = excluded.created_ts`
	if _, err := d.db.ExecContext(ctx, stmt, upsert.UserID, string(upsert.Kind), upsert.Note, upsert.ExpiresTs, nowTs); err != nil {
		return nil, errors.Wrap(err, "failed to upsert user status")
	}
	return d.GetUserStatus(ctx, upsert.UserID)
}

func (d *DB) GetUserStatus(ctx context.Context, userID string) (*store.UserStatus, error) {
	userStatus := &store.UserStatus{}
	var kind string
	err := d.db.QueryRowContext(ctx, `
		SELECT user_id, kind, note, expires_ts, created_ts
		FROM user_status
		WHERE user_id = ?`, userID,
	).Scan(
		&userStatus.UserID,
		&kind,
		&userStatus.Note,
		&userStatus.ExpiresTs,
		&userStatus.CreatedTs,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user status")
	}
	userStatus.Kind = store.StatusKind(kind)
	return userStatus, nil
}

func (d *DB) DeleteUserStatus(ctx context.Context, userID string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM user_status WHERE user_id = ?`, userID); err != nil {
		return errors.Wrap(err, "failed to delete user status")
	}
	return nil
}

func (d *DB) DeleteExpiredStatuses(ctx context.Context, nowTs int64) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM user_status WHERE expires_ts IS NOT NULL AND expires_ts < ?`, nowTs); err != nil {
		return errors.Wrap(err, "failed to delete expired statuses")
	}
	return nil
}
