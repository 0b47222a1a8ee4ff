// Package server assembles the HTTP surface over the availability core.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/chronogonk/chronogonk/internal/profile"
	"github.com/chronogonk/chronogonk/server/middleware"
	apiv1 "github.com/chronogonk/chronogonk/server/router/api/v1"
	"github.com/chronogonk/chronogonk/store"
)

type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
	apiV1      *apiv1.APIV1Service
}

// NewServer builds the echo instance with the middleware chain and mounts
// the v1 API.
func NewServer(profile *profile.Profile, store *store.Store, logger *slog.Logger) *Server {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true

	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			logger.Info("request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			)
			return nil
		},
	}))

	// 10 requests per second per client, burst of 20.
	rateLimiter := middleware.NewRateLimiter(time.Second/10, 20)
	echoServer.Use(rateLimiter.Middleware())

	echoServer.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	apiV1 := apiv1.NewAPIV1Service(profile, store, logger)
	apiV1.Register(echoServer.Group("/api/v1"))

	return &Server{
		Profile:    profile,
		Store:      store,
		echoServer: echoServer,
		apiV1:      apiV1,
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	if err := s.echoServer.Start(address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		return err
	}
	return s.Store.Close()
}
