package postgres

import (
	"context"
	"database/sql"
	"time"

	// Import the PostgreSQL driver.
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/chronogonk/chronogonk/internal/profile"
	"github.com/chronogonk/chronogonk/store"
)

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens a PostgreSQL connection from profile.DSN.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}

	db, err := sql.Open("postgres", profile.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database: %s", profile.DSN)
	}

	// Small community deployment: keep the pool modest.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(2 * time.Hour)
	db.SetConnMaxIdleTime(15 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	driver := &DB{db: db, profile: profile}
	return driver, nil
}

func (d *DB) GetDB() *sql.DB {
	return d.db
}

func (d *DB) Close() error {
	return d.db.Close()
}

const latestSchema = `
CREATE TABLE IF NOT EXISTS user_timezone (
	user_id TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	timezone TEXT NOT NULL,
	created_ts BIGINT NOT NULL,
	updated_ts BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_status (
	user_id TEXT PRIMARY KEY,
	kind TEXT NOT NULL CHECK (kind IN ('FREE', 'BUSY', 'DO_NOT_DISTURB')),
	note TEXT NOT NULL DEFAULT '',
	expires_ts BIGINT,
	created_ts BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS activity (
	user_id TEXT NOT NULL,
	username TEXT NOT NULL,
	day TEXT NOT NULL,
	message_count BIGINT NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, day)
);
`

// Migrate creates the schema when missing. See the sqlite driver for why
// user_status carries no foreign key.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, latestSchema); err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}
	return nil
}
