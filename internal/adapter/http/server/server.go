package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Temutjin2k/launch-dashboard/config"
	"github.com/Temutjin2k/launch-dashboard/internal/adapter/http/handler"
	"github.com/Temutjin2k/launch-dashboard/internal/adapter/http/middleware"
	"github.com/Temutjin2k/launch-dashboard/internal/service/dashboard"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	ws "github.com/Temutjin2k/launch-dashboard/pkg/wsHub"
)

const defaultShutdownTimeout = 5 * time.Second

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	addr            string
	shutdownTimeout time.Duration
	log             logger.Logger
}

type handlers struct {
	health    *handler.Health
	dashboard *handler.Dashboard
}

func New(
	cfg config.Config,
	service handler.DashboardService,
	renderer dashboard.Renderer,
	hub *ws.ConnectionHub,
	logger logger.Logger,
) (*API, error) {
	if service == nil || renderer == nil || hub == nil {
		return nil, errors.New("dashboard service, renderer and hub are required")
	}

	serviceName := string(cfg.Mode)
	handlers := &handlers{
		health: handler.NewHealth(serviceName, service, hub, logger),
		dashboard: handler.NewDashboard(service, renderer, hub, handler.DashboardConfig{
			ServiceName:  serviceName,
			PrettyHTML:   cfg.HTTP.PrettyHTML,
			PingInterval: cfg.WebSocket.PingInterval,
		}, logger),
	}

	api := &API{
		mux:             http.NewServeMux(),
		routes:          handlers,
		m:               middleware.NewMiddleware(serviceName, cfg.HTTP.Compression, logger),
		addr:            net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port),
		shutdownTimeout: cfg.HTTP.ShutdownTimeout,
		log:             logger,
	}
	if api.shutdownTimeout <= 0 {
		api.shutdownTimeout = defaultShutdownTimeout
	}

	setupRoutes(api.mux, api.routes)

	// net/http's own errors go to the JSON log as well
	api.server = &http.Server{
		Addr:              api.addr,
		Handler:           api.withMiddleware(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.GetSlogLogger().Handler(), slog.LevelError),
	}

	return api, nil
}

// Handler returns the routed handler with every middleware applied.
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Wrap(a.mux)
}
