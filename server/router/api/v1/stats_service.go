package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chronogonk/chronogonk/internal/timezone"
	"github.com/chronogonk/chronogonk/server/internal/observability"
	"github.com/chronogonk/chronogonk/store"
)

const (
	defaultStatsDays = 7
	maxStatsDays     = 30

	// activityRetentionDays is the horizon beyond which counters are
	// pruned opportunistically on the read path.
	activityRetentionDays = 30
)

type activityTotalResponse struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	MessageCount int64  `json:"messageCount"`
}

func toActivityTotalResponses(totals []*store.ActivityTotal) []*activityTotalResponse {
	resp := make([]*activityTotalResponse, 0, len(totals))
	for _, t := range totals {
		resp = append(resp, &activityTotalResponse{
			UserID:       t.UserID,
			Username:     t.Username,
			MessageCount: t.MessageCount,
		})
	}
	return resp
}

// ActivityStats returns the per-user message totals for a trailing-day
// window, most active first.
func (s *APIV1Service) ActivityStats(c echo.Context) error {
	days := defaultStatsDays
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxStatsDays {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be between 1 and 30")
		}
		days = parsed
	}

	now, err := referenceInstant(c)
	if err != nil {
		return err
	}

	totals, err := s.Store.SumActivity(c.Request().Context(), timezone.DaysAgo(now, days))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toActivityTotalResponses(totals))
}

// TodayStats returns the current day's leaderboard.
func (s *APIV1Service) TodayStats(c echo.Context) error {
	now, err := referenceInstant(c)
	if err != nil {
		return err
	}

	totals, err := s.Store.ActivityForDay(c.Request().Context(), timezone.Day(now))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toActivityTotalResponses(totals))
}

type messageEventRequest struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	ChannelID string `json:"channelId"`
}

type messageEventResponse struct {
	Nag *nagResponse `json:"nag,omitempty"`
}

type nagResponse struct {
	Hour      int    `json:"hour"`
	LocalTime string `json:"localTime"`
	Group     bool   `json:"group"`
}

// MessageEvent records an inbound message: it bumps the daily activity
// counter, feeds the channel window, and returns a late-night nag verdict
// when one is due.
func (s *APIV1Service) MessageEvent(c echo.Context) error {
	var req messageEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	now, err := referenceInstant(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	rc := observability.NewRequestContext(s.logger, "events.message", req.UserID)
	if err := s.Store.IncrementActivity(ctx, &store.IncrementActivity{
		UserID:   req.UserID,
		Username: req.Username,
		Day:      timezone.Day(now),
	}); err != nil {
		return toHTTPError(err)
	}

	// Retention pruning piggybacks on the write path; failures only cost
	// disk, not correctness.
	if err := s.Store.PruneActivity(ctx, timezone.DaysAgo(now, activityRetentionDays)); err != nil {
		rc.Warn("activity prune failed")
	}

	s.Nightwatch.TrackMessage(req.ChannelID, req.UserID, now)

	resp := &messageEventResponse{}
	if userTimezone, err := s.Store.GetUserTimezone(ctx, req.UserID); err == nil && userTimezone != nil {
		if loc, err := timezone.Parse(userTimezone.Timezone); err == nil {
			if nag, due := s.Nightwatch.Check(req.UserID, loc, req.ChannelID, now); due {
				resp.Nag = &nagResponse{
					Hour:      nag.Hour,
					LocalTime: nag.LocalTime.Format(time.RFC3339),
					Group:     nag.Group,
				}
			}
		}
	}

	rc.Done("message recorded")
	return c.JSON(http.StatusOK, resp)
}
