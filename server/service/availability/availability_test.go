package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chronogonk/chronogonk/internal/timezone"
)

// utcAt builds an instant whose UTC wall-clock hour is h.
func utcAt(h, m int) time.Time {
	return time.Date(2026, 6, 15, h, m, 0, 0, time.UTC)
}

func TestSleepCheckHourBuckets(t *testing.T) {
	tests := []struct {
		hour       int
		wantAsleep bool
		wantReason SleepReason
	}{
		{0, true, ReasonLateNight},
		{3, true, ReasonLateNight},
		{5, true, ReasonLateNight},
		{6, false, ""},
		{12, false, ""},
		{21, false, ""},
		{22, true, ReasonWindingDown},
		{23, true, ReasonWindingDown},
	}

	for _, tt := range tests {
		state := SleepCheck(time.UTC, utcAt(tt.hour, 30))
		if state.Asleep != tt.wantAsleep {
			t.Errorf("SleepCheck at %02d:30: asleep = %v, want %v", tt.hour, state.Asleep, tt.wantAsleep)
		}
		if state.Reason != tt.wantReason {
			t.Errorf("SleepCheck at %02d:30: reason = %q, want %q", tt.hour, state.Reason, tt.wantReason)
		}
	}
}

func TestSleepCheckRespectsZone(t *testing.T) {
	tokyo := timezone.MustParse("Asia/Tokyo")
	// 18:00 UTC is 03:00 in Tokyo (UTC+9).
	state := SleepCheck(tokyo, utcAt(18, 0))
	require.True(t, state.Asleep)
	require.Equal(t, ReasonLateNight, state.Reason)
	require.Equal(t, 3, state.LocalTime.Hour())
}

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		hour int
		want Period
	}{
		{0, PeriodLateNight},
		{3, PeriodLateNight},
		{4, PeriodLateNight}, // hour 4 folds into late night
		{5, PeriodEarlyMorning},
		{8, PeriodEarlyMorning},
		{9, PeriodMorning},
		{11, PeriodMorning},
		{12, PeriodAfternoon},
		{16, PeriodAfternoon},
		{17, PeriodEvening},
		{20, PeriodEvening},
		{21, PeriodNight},
		{23, PeriodNight},
	}

	for _, tt := range tests {
		if got := PeriodOf(time.UTC, utcAt(tt.hour, 0)); got != tt.want {
			t.Errorf("PeriodOf at %02d:00 = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestUntilAwakeNoneWhenAwake(t *testing.T) {
	_, asleep := UntilAwake(time.UTC, utcAt(14, 0))
	require.False(t, asleep)
}

func TestUntilAwakeOvernight(t *testing.T) {
	// 03:30 local: wake at 08:00 same day, 4h30m away.
	d, asleep := UntilAwake(time.UTC, utcAt(3, 30))
	require.True(t, asleep)
	require.Equal(t, 4*time.Hour+30*time.Minute, d)

	// The implied wake instant lands exactly on 08:00 local.
	wake := utcAt(3, 30).Add(d).In(time.UTC)
	require.Equal(t, 8, wake.Hour())
	require.Equal(t, 0, wake.Minute())
}

func TestUntilAwakeWindingDown(t *testing.T) {
	// 22:15 local: wake at 08:00 the next day, 9h45m away.
	d, asleep := UntilAwake(time.UTC, utcAt(22, 15))
	require.True(t, asleep)
	require.Equal(t, 9*time.Hour+45*time.Minute, d)

	wake := utcAt(22, 15).Add(d).In(time.UTC)
	require.Equal(t, 8, wake.Hour())
	require.Equal(t, 0, wake.Minute())
}

func TestPingCheck(t *testing.T) {
	verdict := PingCheck(time.UTC, utcAt(14, 0))
	require.True(t, verdict.Safe)
	require.Empty(t, verdict.Reason)
	require.Equal(t, PeriodAfternoon, verdict.Period)

	verdict = PingCheck(time.UTC, utcAt(23, 0))
	require.False(t, verdict.Safe)
	require.Equal(t, ReasonWindingDown, verdict.Reason)
}

func TestBestOverlapEveryoneAwakeNow(t *testing.T) {
	locs := []*time.Location{time.UTC, time.UTC, time.UTC}
	result := BestOverlap(locs, utcAt(9, 0))
	require.Equal(t, OverlapNow, result.Outcome)
}

func TestBestOverlapFindsLaterHour(t *testing.T) {
	// 03:00 UTC: everyone asleep now; first awake hour for all-UTC zones
	// is 08:00, five hours out.
	locs := []*time.Location{time.UTC, time.UTC}
	result := BestOverlap(locs, utcAt(3, 0))
	require.Equal(t, OverlapFound, result.Outcome)
	require.Equal(t, 5, result.HoursFromNow)
	require.Equal(t, 8, result.At.In(time.UTC).Hour())
}

func TestBestOverlapNoWindow(t *testing.T) {
	// The 14-hour awake window means any two zones share at least a sliver
	// of it, so the no-overlap case needs three zones spaced 8 hours
	// apart: at any instant at most two fall inside [8, 22).
	a := time.FixedZone("A", 0)
	b := time.FixedZone("B", 8*3600)
	c := time.FixedZone("C", 16*3600)
	result := BestOverlap([]*time.Location{a, b, c}, utcAt(0, 0))
	require.Equal(t, OverlapNone, result.Outcome)
}

func TestBestOverlapInsufficientParticipants(t *testing.T) {
	result := BestOverlap([]*time.Location{time.UTC}, utcAt(9, 0))
	require.Equal(t, OverlapInsufficient, result.Outcome)

	result = BestOverlap(nil, utcAt(9, 0))
	require.Equal(t, OverlapInsufficient, result.Outcome)
}
