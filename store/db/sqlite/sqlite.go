package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	// Import the pure-Go SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/chronogonk/chronogonk/internal/profile"
	"github.com/chronogonk/chronogonk/store"
)

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens the SQLite database at profile.DSN.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}

	db, err := sql.Open("sqlite", profile.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database: %s", profile.DSN)
	}

	// A single connection keeps writes serialized and makes the in-memory
	// DSN usable in tests.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(2 * time.Hour)

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
	created_ts INTEGER NOT NULL,
	updated_ts INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS user_status (
	user_id TEXT PRIMARY KEY,
	kind TEXT NOT NULL CHECK (kind IN ('FREE', 'BUSY', 'DO_NOT_DISTURB')),
	note TEXT NOT NULL DEFAULT '',
	expires_ts INTEGER,
	created_ts INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS activity (
	user_id TEXT NOT NULL,
	username TEXT NOT NULL,
	day TEXT NOT NULL,
	message_count INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, day)
);
`

// Migrate creates the schema when missing. Statuses deliberately carry no
// foreign key to user_timezone: a status may exist for a user who never
// registered a zone, and the delete cascade lives in the store facade.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, latestSchema); err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}
	return nil
}
