package db

import (
	"github.com/pkg/errors"

	"github.com/chronogonk/chronogonk/internal/profile"
	"github.com/chronogonk/chronogonk/store"
	"github.com/chronogonk/chronogonk/store/db/postgres"
	"github.com/chronogonk/chronogonk/store/db/sqlite"
)

// NewDBDriver creates a new db driver based on profile.
// SQLite is the default and needs no external service; PostgreSQL is for
// deployments that already run one.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch profile.Driver {
	case "sqlite":
		driver, err = sqlite.NewDB(profile)
	case "postgres":
		driver, err = postgres.NewDB(profile)
	default:
		return nil, errors.Errorf("unknown db driver %q", profile.Driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}
