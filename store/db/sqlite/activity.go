package sqlite

import (
	"context"

	"github.com/pkg/errors"

	"github.com/chronogonk/chronogonk/store"
)

func (d *DB) IncrementActivity(ctx context.Context, increment *store.IncrementActivity) error {
	stmt := `
		INSERT INTO activity (user_id, username, day, message_count)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(user_id, day) DO UPDATE SET
			message_count = message_count + 1,
			username = excluded.username`
	if _, err := d.db.ExecContext(ctx, stmt, increment.UserID, increment.Username, increment.Day); err != nil {
		return errors.Wrap(err, "failed to increment activity")
	}
	return nil
}

func (d *DB) SumActivity(ctx context.Context, sinceDay string) ([]*store.ActivityTotal, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT user_id, username, SUM(message_count) AS total
		FROM activity
		WHERE day >= ?
		GROUP BY user_id, username
		ORDER BY total DESC`, sinceDay)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum activity")
	}
	defer rows.Close()
	return scanActivityTotals(rows)
}

func (d *DB) ActivityForDay(ctx context.Context, day string) ([]*store.ActivityTotal, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT user_id, username, message_count
		FROM activity
		WHERE day = ?
		ORDER BY message_count DESC`, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query activity for day")
	}
	defer rows.Close()
	return scanActivityTotals(rows)
}

func (d *DB) PruneActivity(ctx context.Context, beforeDay string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM activity WHERE day < ?`, beforeDay); err != nil {
		return errors.Wrap(err, "failed to prune activity")
	}
	return nil
}
