package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chronogonk/chronogonk/server/internal/observability"
	"github.com/chronogonk/chronogonk/store"
)

const (
	defaultAFKMinutes = 30
	maxAFKMinutes     = 960  // 16 hours
	maxStatusMinutes  = 1440 // 24 hours
)

type upsertStatusRequest struct {
	UserID string `json:"userId"`
	Kind   string `json:"kind"`
	Note   string `json:"note"`
	// DurationMinutes > 0 sets an expiry that far in the future; zero or
	// absent means the status never expires.
	DurationMinutes int `json:"durationMinutes"`
}

type userStatusResponse struct {
	UserID    string `json:"userId"`
	Kind      string `json:"kind"`
	Note      string `json:"note,omitempty"`
	ExpiresTs *int64 `json:"expiresTs,omitempty"`
	CreatedTs int64  `json:"createdTs"`
}

func toUserStatusResponse(s *store.UserStatus) *userStatusResponse {
	return &userStatusResponse{
		UserID:    s.UserID,
		Kind:      string(s.Kind),
		Note:      s.Note,
		ExpiresTs: s.ExpiresTs,
		CreatedTs: s.CreatedTs,
	}
}

// UpsertStatus sets or replaces the caller's availability status.
func (s *APIV1Service) UpsertStatus(c echo.Context) error {
	var req upsertStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.DurationMinutes < 0 || req.DurationMinutes > maxStatusMinutes {
		return echo.NewHTTPError(http.StatusBadRequest, "durationMinutes out of range")
	}

	upsert := &store.UpsertUserStatus{
		UserID: req.UserID,
		Kind:   store.StatusKind(req.Kind),
		Note:   req.Note,
	}
	if req.DurationMinutes > 0 {
		expiresTs := time.Now().Add(time.Duration(req.DurationMinutes) * time.Minute).Unix()
		upsert.ExpiresTs = &expiresTs
	}

	rc := observability.NewRequestContext(s.logger, "status.upsert", req.UserID)
	status, err := s.Store.UpsertUserStatus(c.Request().Context(), upsert)
	if err != nil {
		return toHTTPError(err)
	}
	rc.Done("status upserted", slog.String("kind", string(status.Kind)))
	return c.JSON(http.StatusOK, toUserStatusResponse(status))
}

// GetStatus returns a user's active status; expired records read as absent.
func (s *APIV1Service) GetStatus(c echo.Context) error {
	status, err := s.Store.GetUserStatus(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return toHTTPError(err)
	}
	if status == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no active status")
	}
	return c.JSON(http.StatusOK, toUserStatusResponse(status))
}

// DeleteStatus clears a user's status (the "back" action).
func (s *APIV1Service) DeleteStatus(c echo.Context) error {
	if err := s.Store.DeleteUserStatus(c.Request().Context(), c.Param("userID")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type afkRequest struct {
	UserID  string `json:"userId"`
	Minutes int    `json:"minutes"`
	Reason  string `json:"reason"`
}

// SetAFK is the quick away shortcut: a Busy status with a default
// 30-minute expiry.
func (s *APIV1Service) SetAFK(c echo.Context) error {
	var req afkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if req.Minutes < 0 || req.Minutes > maxAFKMinutes {
		return echo.NewHTTPError(http.StatusBadRequest, "minutes out of range")
	}
	if req.Minutes == 0 {
		req.Minutes = defaultAFKMinutes
	}
	if req.Reason == "" {
		req.Reason = "AFK"
	}

	expiresTs := time.Now().Add(time.Duration(req.Minutes) * time.Minute).Unix()
	status, err := s.Store.UpsertUserStatus(c.Request().Context(), &store.UpsertUserStatus{
		UserID:    req.UserID,
		Kind:      store.StatusBusy,
		Note:      req.Reason,
		ExpiresTs: &expiresTs,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toUserStatusResponse(status))
}
