// Package v1 exposes the availability core over a small JSON API.
//
// Handlers translate HTTP to the structured results the services produce;
// no user-facing message text is rendered here. That remains the
// presentation layer's job.
package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	coreerrors "github.com/chronogonk/chronogonk/internal/errors"
	"github.com/chronogonk/chronogonk/internal/profile"
	"github.com/chronogonk/chronogonk/server/service/nightwatch"
	"github.com/chronogonk/chronogonk/server/service/presence"
	"github.com/chronogonk/chronogonk/store"
)

type APIV1Service struct {
	Profile    *profile.Profile
	Store      *store.Store
	Presence   *presence.Service
	Nightwatch *nightwatch.Service

	logger *slog.Logger
}

// NewAPIV1Service wires the services the handlers depend on.
func NewAPIV1Service(profile *profile.Profile, store *store.Store, logger *slog.Logger) *APIV1Service {
	return &APIV1Service{
		Profile:    profile,
		Store:      store,
		Presence:   presence.NewService(store),
		Nightwatch: nightwatch.NewService(),
		logger:     logger,
	}
}

// Register mounts all v1 routes on the given group.
func (s *APIV1Service) Register(g *echo.Group) {
	g.POST("/timezones", s.UpsertTimezone)
	g.GET("/timezones", s.ListTimezones)
	g.GET("/timezones/:userID", s.GetTimezone)
	g.DELETE("/timezones/:userID", s.DeleteTimezone)

	g.POST("/statuses", s.UpsertStatus)
	g.GET("/statuses/:userID", s.GetStatus)
	g.DELETE("/statuses/:userID", s.DeleteStatus)
	g.POST("/afk", s.SetAFK)

	g.GET("/users/:userID/ping-check", s.PingCheck)
	g.GET("/overlap", s.Overlap)
	g.GET("/roster", s.Roster)

	g.GET("/stats/activity", s.ActivityStats)
	g.GET("/stats/today", s.TodayStats)
	g.POST("/events/message", s.MessageEvent)
}

// referenceInstant returns the instant reasoning runs against: the "at"
// query parameter (RFC 3339) when supplied, otherwise the wall clock.
func referenceInstant(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("at")
	if raw == "" {
		return time.Now(), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid reference instant, want RFC 3339")
	}
	return at, nil
}

// toHTTPError maps core error codes onto HTTP statuses. Storage failures
// stay 500: no recovery strategy exists for them.
func toHTTPError(err error) error {
	switch coreerrors.CodeOf(err) {
	case coreerrors.ErrCodeInvalidTimezone, coreerrors.ErrCodeInvalidArgument:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case coreerrors.ErrCodeNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
