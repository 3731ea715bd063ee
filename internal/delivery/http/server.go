// Package http hosts the echo-based HTTP delivery.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router"
	"backoffice/internal/delivery/http/validator"
)

// HTTPParams holds server dependencies, injected by Fx.
type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	RouterParams    router.RouterParams
	ErrorMiddleware *middleware.ErrorMiddleware
	RequestID       *middleware.RequestIDMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the echo server with the global middleware chain and the
// registered routes, and hooks its shutdown into the Fx lifecycle.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(params.RequestID.Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Use(echomw.Recover())
	echoServer.Use(echomw.CORS())

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, delivery.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
