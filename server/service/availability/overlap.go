package availability

import (
	"time"
)

// OverlapOutcome is the kind of result an overlap search produced.
type OverlapOutcome string

const (
	// OverlapInsufficient means fewer than two zones were supplied.
	OverlapInsufficient OverlapOutcome = "INSUFFICIENT_PARTICIPANTS"
	// OverlapNow means every zone is awake at the reference instant.
	OverlapNow OverlapOutcome = "EVERYONE_AWAKE_NOW"
	// OverlapFound means a later hour within the scan qualifies.
	OverlapFound OverlapOutcome = "FOUND"
	// OverlapNone means no hour within the scan qualifies.
	OverlapNone OverlapOutcome = "NONE"
)

// OverlapResult describes the soonest instant all supplied zones are
// simultaneously awake. It is a first-feasible-slot answer, not an
// optimization for the longest shared window.
type OverlapResult struct {
	Outcome OverlapOutcome
	// HoursFromNow and At are set only for OverlapFound.
	HoursFromNow int
	At           time.Time
}

// BestOverlap scans the next OverlapScanHours hours in 1-hour steps
// starting at now (offset 0 = right now). A zone counts as awake when its
// local hour lies in [AwakeHourStart, AwakeHourEnd). The earliest offset
// at which every zone is awake wins.
func BestOverlap(locs []*time.Location, now time.Time) OverlapResult {
	if len(locs) < MinOverlapParticipants {
		return OverlapResult{Outcome: OverlapInsufficient}
	}

	for offset := 0; offset < OverlapScanHours; offset++ {
		candidate := now.Add(time.Duration(offset) * time.Hour)
		if allAwake(locs, candidate) {
			if offset == 0 {
				return OverlapResult{Outcome: OverlapNow, At: candidate}
			}
			return OverlapResult{Outcome: OverlapFound, HoursFromNow: offset, At: candidate}
		}
	}
	return OverlapResult{Outcome: OverlapNone}
}

func allAwake(locs []*time.Location, at time.Time) bool {
	for _, loc := range locs {
		hour := at.In(loc).Hour()
		if hour < AwakeHourStart || hour >= AwakeHourEnd {
			return false
		}
	}
	return true
}
