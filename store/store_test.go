package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	coreerrors "github.com/chronogonk/chronogonk/internal/errors"
	"github.com/chronogonk/chronogonk/internal/profile"
	"github.com/chronogonk/chronogonk/store"
	"github.com/chronogonk/chronogonk/store/db/sqlite"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	p := &profile.Profile{Mode: "dev", Driver: "sqlite", DSN: ":memory:"}
	driver, err := sqlite.NewDB(p)
	require.NoError(t, err)
	require.NoError(t, driver.Migrate(context.Background()))

	s := store.New(driver, p)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func int64Ptr(v int64) *int64 { return &v }

func TestUserTimezoneRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.UpsertUserTimezone(ctx, &store.UpsertUserTimezone{
		UserID:   "u1",
		Username: "river",
		Timezone: "America/New_York",
	})
	require.NoError(t, err)
	require.Equal(t, "America/New_York", created.Timezone)
	require.NotZero(t, created.CreatedTs)

	got, err := s.GetUserTimezone(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "river", got.Username)

	// Upsert overwrites in place, no second record.
	_, err = s.UpsertUserTimezone(ctx, &store.UpsertUserTimezone{
		UserID:   "u1",
		Username: "river",
		Timezone: "Asia/Tokyo",
	})
	require.NoError(t, err)

	list, err := s.ListUserTimezones(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Asia/Tokyo", list[0].Timezone)
}

func TestUpsertUserTimezoneRejectsInvalidZone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.UpsertUserTimezone(ctx, &store.UpsertUserTimezone{
		UserID:   "u1",
		Username: "river",
		Timezone: "Night/City",
	})
	require.Error(t, err)
	require.Equal(t, coreerrors.ErrCodeInvalidTimezone, coreerrors.CodeOf(err))

	got, err := s.GetUserTimezone(ctx, "u1")
	require.NoError(t, err)
	require.Nil(t, got, "nothing should be stored for a rejected zone")
}

func TestListUserTimezonesOrderedByUsername(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, u := range []struct{ id, name, tz string }{
		{"u1", "zed", "UTC"},
		{"u2", "alice", "UTC"},
		{"u3", "mox", "UTC"},
	} {
		_, err := s.UpsertUserTimezone(ctx, &store.UpsertUserTimezone{UserID: u.id, Username: u.name, Timezone: u.tz})
		require.NoError(t, err)
	}

	list, err := s.ListUserTimezones(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []string{"alice", "mox", "zed"}, []string{list[0].Username, list[1].Username, list[2].Username})
}

func TestDeleteUserTimezoneCascadesStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.UpsertUserTimezone(ctx, &store.UpsertUserTimezone{UserID: "u1", Username: "river", Timezone: "UTC"})
	require.NoError(t, err)
	_, err = s.UpsertUserStatus(ctx, &store.UpsertUserStatus{UserID: "u1", Kind: store.StatusFree})
	require.NoError(t, err)

	require.NoError(t, s.DeleteUserTimezone(ctx, "u1"))

	status, err := s.GetUserStatus(ctx, "u1")
	require.NoError(t, err)
	require.Nil(t, status, "status should be wiped with the timezone")
}

func TestStatusWithoutTimezoneAllowed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// Status set does not require a registered timezone.
	created, err := s.UpsertUserStatus(ctx, &store.UpsertUserStatus{UserID: "ghost", Kind: store.StatusBusy, Note: "gig"})
	require.NoError(t, err)
	require.Equal(t, store.StatusBusy, created.Kind)
}

func TestStatusTTLRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	expiresTs := time.Now().Add(30 * time.Minute).Unix()
	created, err := s.UpsertUserStatus(ctx, &store.UpsertUserStatus{
		UserID:    "u1",
		Kind:      store.StatusBusy,
		Note:      "gig",
		ExpiresTs: int64Ptr(expiresTs),
	})
	require.NoError(t, err)
	require.Equal(t, store.StatusBusy, created.Kind)
	require.Equal(t, "gig", created.Note)

	got, err := s.GetUserStatus(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.Expired(time.Now()))

	// Simulate the clock passing the expiry by rewriting it into the past.
	_, err = s.UpsertUserStatus(ctx, &store.UpsertUserStatus{
		UserID:    "u1",
		Kind:      store.StatusBusy,
		Note:      "gig",
		ExpiresTs: int64Ptr(time.Now().Add(-time.Minute).Unix()),
	})
	require.NoError(t, err)

	got, err = s.GetUserStatus(ctx, "u1")
	require.NoError(t, err)
	require.Nil(t, got, "expired status must read as absent")

	// Lazy eviction physically removed the row.
	raw, err := s.GetDriver().GetUserStatus(ctx, "u1")
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestSweepExpiredStatuses(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.UpsertUserStatus(ctx, &store.UpsertUserStatus{
		UserID:    "expired",
		Kind:      store.StatusFree,
		ExpiresTs: int64Ptr(time.Now().Add(-time.Hour).Unix()),
	})
	require.NoError(t, err)
	_, err = s.UpsertUserStatus(ctx, &store.UpsertUserStatus{UserID: "forever", Kind: store.StatusFree})
	require.NoError(t, err)

	require.NoError(t, s.SweepExpiredStatuses(ctx, time.Now()))

	raw, err := s.GetDriver().GetUserStatus(ctx, "expired")
	require.NoError(t, err)
	require.Nil(t, raw)

	kept, err := s.GetUserStatus(ctx, "forever")
	require.NoError(t, err)
	require.NotNil(t, kept, "statuses without expiry survive the sweep")
}

func TestUpsertUserStatusRejectsUnknownKind(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.UpsertUserStatus(ctx, &store.UpsertUserStatus{UserID: "u1", Kind: store.StatusKind("NAPPING")})
	require.Error(t, err)
	require.Equal(t, coreerrors.ErrCodeInvalidArgument, coreerrors.CodeOf(err))
}

func TestActivityAggregation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	dayD := "2026-02-01"
	dayD1 := "2026-02-02"

	for i := 0; i < 3; i++ {
		require.NoError(t, s.IncrementActivity(ctx, &store.IncrementActivity{UserID: "x", Username: "xan", Day: dayD}))
	}
	require.NoError(t, s.IncrementActivity(ctx, &store.IncrementActivity{UserID: "x", Username: "xan", Day: dayD1}))
	require.NoError(t, s.IncrementActivity(ctx, &store.IncrementActivity{UserID: "y", Username: "yor", Day: dayD1}))

	// Trailing 2-day window starting at D+1 covers D and D+1.
	totals, err := s.SumActivity(ctx, dayD)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	require.Equal(t, "x", totals[0].UserID)
	require.EqualValues(t, 4, totals[0].MessageCount)
	require.EqualValues(t, 1, totals[1].MessageCount)

	today, err := s.ActivityForDay(ctx, dayD1)
	require.NoError(t, err)
	require.Len(t, today, 2)
	require.EqualValues(t, 1, today[0].MessageCount)
}

func TestPruneActivity(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.IncrementActivity(ctx, &store.IncrementActivity{UserID: "x", Username: "xan", Day: "2026-01-01"}))
	require.NoError(t, s.IncrementActivity(ctx, &store.IncrementActivity{UserID: "x", Username: "xan", Day: "2026-02-15"}))

	require.NoError(t, s.PruneActivity(ctx, "2026-02-01"))

	totals, err := s.SumActivity(ctx, "2026-01-01")
	require.NoError(t, err)
	require.Len(t, totals, 1)
	require.EqualValues(t, 1, totals[0].MessageCount)
}
