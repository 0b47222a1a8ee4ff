package sqlite

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/chronogonk/chronogonk/store"
)

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
