// Package availability implements the timezone reasoning engine: sleep
// classification, time-period labels, wake estimation and ping-safety
// verdicts.
//
// Every function is a pure function of a zone and a reference instant, so
// identical inputs always produce identical results and concurrent calls
// are safe.
package availability

import (
	"time"
)

// SleepReason explains why a user is classified asleep.
type SleepReason string

const (
	// ReasonLateNight covers the overnight window [0, 6).
	ReasonLateNight SleepReason = "late night"
	// ReasonWindingDown covers the evening window [22, 24).
	ReasonWindingDown SleepReason = "winding down"
)

// SleepState is the verdict of the sleep classification heuristic.
type SleepState struct {
	Asleep    bool
	Reason    SleepReason // empty when awake
	LocalTime time.Time
}

// Period is a descriptive label for a local time of day.
type Period string

const (
	PeriodLateNight    Period = "LATE_NIGHT"
	PeriodEarlyMorning Period = "EARLY_MORNING"
	PeriodMorning      Period = "MORNING"
	PeriodAfternoon    Period = "AFTERNOON"
	PeriodEvening      Period = "EVENING"
	PeriodNight        Period = "NIGHT"
)

// PingVerdict is the result of a ping-safety check.
type PingVerdict struct {
	Safe      bool
	Reason    SleepReason // set only when unsafe
	LocalTime time.Time
	Period    Period
}

// SleepCheck classifies whether a user in the given zone is likely asleep
// at now. Local hour in [0, 6) reads as overnight sleep, [22, 24) as
// winding down. A fixed heuristic, not a sleep-prediction model.
func SleepCheck(loc *time.Location, now time.Time) SleepState {
	local := now.In(loc)
	hour := local.Hour()

	switch {
	case hour < SleepHourEnd:
		return SleepState{Asleep: true, Reason: ReasonLateNight, LocalTime: local}
	case hour >= WindDownHourStart:
		return SleepState{Asleep: true, Reason: ReasonWindingDown, LocalTime: local}
	default:
		return SleepState{Asleep: false, LocalTime: local}
	}
}

// PeriodOf labels the local time of day at now in the given zone.
func PeriodOf(loc *time.Location, now time.Time) Period {
	hour := now.In(loc).Hour()

	switch {
	case hour < lateNightEnd:
		return PeriodLateNight
	case hour < earlyMorningEnd:
		return PeriodEarlyMorning
	case hour < morningEnd:
		return PeriodMorning
	case hour < afternoonEnd:
		return PeriodAfternoon
	case hour < eveningEnd:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

// UntilAwake estimates how long until a sleeping user wakes, assuming an
// 08:00 local wake-up. Returns false when the user is not classified
// asleep. Someone winding down in the evening wakes tomorrow; someone in
// the overnight window wakes the same calendar day.
func UntilAwake(loc *time.Location, now time.Time) (time.Duration, bool) {
	state := SleepCheck(loc, now)
	if !state.Asleep {
		return 0, false
	}

	local := state.LocalTime
	wakeDay := local
	if state.Reason == ReasonWindingDown {
		wakeDay = local.AddDate(0, 0, 1)
	}
	wake := time.Date(wakeDay.Year(), wakeDay.Month(), wakeDay.Day(), WakeHour, 0, 0, 0, loc)

	d := wake.Sub(now)
	if d < 0 {
		d = 0
	}
	return d, true
}

// PingCheck reports whether it is a reasonable moment to ping a user in
// the given zone. Unsafe exactly when the sleep heuristic fires; the
// verdict carries the sleep reason for the caller to surface.
func PingCheck(loc *time.Location, now time.Time) PingVerdict {
	state := SleepCheck(loc, now)
	return PingVerdict{
		Safe:      !state.Asleep,
		Reason:    state.Reason,
		LocalTime: state.LocalTime,
		Period:    PeriodOf(loc, now),
	}
}
