package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chronogonk/chronogonk/server/internal/observability"
	"github.com/chronogonk/chronogonk/store"
)

type upsertTimezoneRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Timezone string `json:"timezone"`
}

type userTimezoneResponse struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Timezone  string `json:"timezone"`
	CreatedTs int64  `json:"createdTs"`
	UpdatedTs int64  `json:"updatedTs"`
}

func toUserTimezoneResponse(u *store.UserTimezone) *userTimezoneResponse {
	return &userTimezoneResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Timezone:  u.Timezone,
		CreatedTs: u.CreatedTs,
		UpdatedTs: u.UpdatedTs,
	}
}

// UpsertTimezone registers or updates a member's timezone.
func (s *APIV1Service) UpsertTimezone(c echo.Context) error {
	var req upsertTimezoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	rc := observability.NewRequestContext(s.logger, "timezone.upsert", req.UserID)
	userTimezone, err := s.Store.UpsertUserTimezone(c.Request().Context(), &store.UpsertUserTimezone{
		UserID:   req.UserID,
		Username: req.Username,
		Timezone: req.Timezone,
	})
	if err != nil {
		rc.Warn("timezone upsert rejected", slog.String("timezone", req.Timezone))
		return toHTTPError(err)
	}
	rc.Done("timezone upserted", slog.String("timezone", userTimezone.Timezone))
	return c.JSON(http.StatusOK, toUserTimezoneResponse(userTimezone))
}

// GetTimezone returns one member's registration.
func (s *APIV1Service) GetTimezone(c echo.Context) error {
	userTimezone, err := s.Store.GetUserTimezone(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return toHTTPError(err)
	}
	if userTimezone == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no timezone registered")
	}
	return c.JSON(http.StatusOK, toUserTimezoneResponse(userTimezone))
}

// ListTimezones returns all registrations ordered by username.
func (s *APIV1Service) ListTimezones(c echo.Context) error {
	list, err := s.Store.ListUserTimezones(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	resp := make([]*userTimezoneResponse, 0, len(list))
	for _, u := range list {
		resp = append(resp, toUserTimezoneResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteTimezone wipes a registration and, with it, the user's status.
func (s *APIV1Service) DeleteTimezone(c echo.Context) error {
	userID := c.Param("userID")
	rc := observability.NewRequestContext(s.logger, "timezone.delete", userID)
	if err := s.Store.DeleteUserTimezone(c.Request().Context(), userID); err != nil {
		return toHTTPError(err)
	}
	rc.Done("timezone deleted")
	return c.NoContent(http.StatusNoContent)
}
