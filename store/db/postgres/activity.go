package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/chronogonk/chronogonk/store"
)

func (d *DB) IncrementActivity(ctx context.Context, increment *store.IncrementActivity) error {
	stmt := `
		INSERT INTO activity (user_id, username, day, message_count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, day) DO UPDATE SET
			message_count = activity.message_count + 1,
			username = EXCLUDED.username`
	if _, err := d.db.ExecContext(ctx, stmt, increment.UserID, increment.Username, increment.Day); err != nil {
		return errors.Wrap(err, "failed to increment activity")
	}
	return nil
}

func (d *DB) SumActivity(ctx context.Context, sinceDay string) ([]*store.ActivityTotal, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT user_id, username, SUM(message_count) AS total
		FROM activity
		WHERE day >= $1
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
		WHERE day = $1
		ORDER BY message_count DESC`, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query activity for day")
	}
	defer rows.Close()
	return scanActivityTotals(rows)
}

func (d *DB) PruneActivity(ctx context.Context, beforeDay string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM activity WHERE day < $1`, beforeDay); err != nil {
		return errors.Wrap(err, "failed to prune activity")
	}
	return nil
}

func scanActivityTotals(rows *sql.Rows) ([]*store.ActivityTotal, error) {
	list := []*store.ActivityTotal{}
	for rows.Next() {
		total := &store.ActivityTotal{}
		if err := rows.Scan(&total.UserID, &total.Username, &total.MessageCount); err != nil {
			return nil, errors.Wrap(err, "failed to scan activity total")
		}
		list = append(list, total)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate activity totals")
	}
	return list, nil
}
