package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chronogonk/chronogonk/internal/timezone"
	"github.com/chronogonk/chronogonk/server/service/availability"
	"github.com/chronogonk/chronogonk/server/service/presence"
)

type pingCheckResponse struct {
	Safe      bool   `json:"safe"`
	Reason    string `json:"reason,omitempty"`
	LocalTime string `json:"localTime"`
	Period    string `json:"period"`
}

// PingCheck reports whether it is a good moment to ping the target user.
func (s *APIV1Service) PingCheck(c echo.Context) error {
	now, err := referenceInstant(c)
	if err != nil {
		return err
	}

	userTimezone, err := s.Store.GetUserTimezone(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return toHTTPError(err)
	}
	if userTimezone == nil {
		return echo.NewHTTPError(http.StatusNotFound, "target user has no registered timezone")
	}

	loc, err := timezone.Parse(userTimezone.Timezone)
	if err != nil {
		return toHTTPError(err)
	}

	verdict := availability.PingCheck(loc, now)
	return c.JSON(http.StatusOK, &pingCheckResponse{
		Safe:      verdict.Safe,
		Reason:    string(verdict.Reason),
		LocalTime: verdict.LocalTime.Format(time.RFC3339),
		Period:    string(verdict.Period),
	})
}

type overlapResponse struct {
	Outcome      string   `json:"outcome"`
	HoursFromNow int      `json:"hoursFromNow,omitempty"`
	At           string   `json:"at,omitempty"`
	Participants []string `json:"participants"`
}

// Overlap finds the soonest hour every registered member is awake.
func (s *APIV1Service) Overlap(c echo.Context) error {
	now, err := referenceInstant(c)
	if err != nil {
		return err
	}

	users, err := s.Store.ListUserTimezones(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	locs := make([]*time.Location, 0, len(users))
	participants := make([]string, 0, len(users))
	for _, u := range users {
		loc, err := timezone.Parse(u.Timezone)
		if err != nil {
			continue
		}
		locs = append(locs, loc)
		participants = append(participants, u.Username)
	}

	result := availability.BestOverlap(locs, now)
	resp := &overlapResponse{
		Outcome:      string(result.Outcome),
		HoursFromNow: result.HoursFromNow,
		Participants: participants,
	}
	if result.Outcome == availability.OverlapFound || result.Outcome == availability.OverlapNow {
		resp.At = result.At.UTC().Format(time.RFC3339)
	}
	return c.JSON(http.StatusOK, resp)
}

type rosterEntryResponse struct {
	UserID      string              `json:"userId"`
	Username    string              `json:"username"`
	Timezone    string              `json:"timezone"`
	LocalTime   string              `json:"localTime"`
	Period      string              `json:"period"`
	Asleep      bool                `json:"asleep"`
	SleepReason string              `json:"sleepReason,omitempty"`
	Status      *userStatusResponse `json:"status,omitempty"`
	// AwakeInSeconds is a wake estimate for sleeping users.
	AwakeInSeconds int64 `json:"awakeInSeconds,omitempty"`
}

func toRosterEntryResponse(e *presence.Entry) *rosterEntryResponse {
	resp := &rosterEntryResponse{
		UserID:      e.UserID,
		Username:    e.Username,
		Timezone:    e.Timezone,
		LocalTime:   e.LocalTime.Format(time.RFC3339),
		Period:      string(e.Period),
		Asleep:      e.Asleep,
		SleepReason: string(e.SleepReason),
	}
	if e.Status != nil {
		resp.Status = toUserStatusResponse(e.Status)
	}
	if e.UntilAwake > 0 {
		resp.AwakeInSeconds = int64(e.UntilAwake.Seconds())
	}
	return resp
}

// Roster returns everyone's merged availability, ranked most-available
// first. Expired statuses are swept before the listing.
func (s *APIV1Service) Roster(c echo.Context) error {
	now, err := referenceInstant(c)
	if err != nil {
		return err
	}

	entries, err := s.Presence.BuildRoster(c.Request().Context(), now)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]*rosterEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toRosterEntryResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}
