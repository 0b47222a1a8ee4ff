package availability

// Package-level policy constants for availability reasoning.
//
// These are fixed heuristics, not learned or per-user schedules. They are
// named here so tests and callers can reference the boundaries without
// touching the algorithms.

const (
	// SleepHourEnd is the exclusive end of the overnight sleep window [0, 6).
	SleepHourEnd = 6

	// WindDownHourStart is the inclusive start of the evening wind-down
	// window [22, 24).
	WindDownHourStart = 22

	// WakeHour is the assumed wake-up hour (08:00 local).
	WakeHour = 8

	// AwakeHourStart and AwakeHourEnd bound the [8, 22) window a zone
	// counts as awake during overlap search.
	AwakeHourStart = 8
	AwakeHourEnd   = 22

	// OverlapScanHours is how far ahead the overlap search scans, in
	// 1-hour steps starting at the reference instant.
	OverlapScanHours = 24

	// MinOverlapParticipants is the minimum number of zones an overlap
	// search needs.
	MinOverlapParticipants = 2
)

// Local-hour bucket boundaries for Period labels. LateNight absorbs hour 4;
// the buckets otherwise match the descriptive labels the bot always used.
const (
	lateNightEnd    = 5
	earlyMorningEnd = 9
	morningEnd      = 12
	afternoonEnd    = 17
	eveningEnd      = 21
)
