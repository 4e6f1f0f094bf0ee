package microservices

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/launch-dashboard/config"
	"github.com/Temutjin2k/launch-dashboard/internal/adapter/dataset"
	"github.com/Temutjin2k/launch-dashboard/internal/adapter/http/server"
	rabbitadapter "github.com/Temutjin2k/launch-dashboard/internal/adapter/rabbit"
	"github.com/Temutjin2k/launch-dashboard/internal/adapter/render"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/models"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/internal/service/dashboard"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/launch-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/launch-dashboard/pkg/metrics"
	"github.com/Temutjin2k/launch-dashboard/pkg/postgres"
	"github.com/Temutjin2k/launch-dashboard/pkg/rabbit"
	"github.com/Temutjin2k/launch-dashboard/pkg/trm"
	ws "github.com/Temutjin2k/launch-dashboard/pkg/wsHub"
)

// Loader produces the dataset once at startup.
type Loader interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

type DashboardService struct {
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	hub        *ws.ConnectionHub
	httpServer *server.API
	cfg        config.Config
	log        logger.Logger
}

func NewDashboard(ctx context.Context, cfg config.Config, log logger.Logger) (_ *DashboardService, err error) {
	s := &DashboardService{
		cfg: cfg,
		log: log,
	}
	// release whatever was opened before the failure
	defer func() {
		if err != nil {
			s.close(ctx)
		}
	}()

	loader, err := s.newLoader(ctx)
	if err != nil {
		log.Error(ctx, "Failed to setup dataset source", err)
		return nil, err
	}

	ds, err := loader.Load(ctx)
	if err != nil {
		log.Error(wrap.ErrorCtx(ctx, err), "Failed to load dataset", err)
		return nil, err
	}
	metrics.DatasetRecordsGauge.WithLabelValues(ds.Source()).Set(float64(ds.Len()))

	var publisher dashboard.EventPublisher
	if cfg.RabbitMQ.Enabled {
		s.rabbitMQ, err = rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			log.Error(ctx, "Failed to connect to RabbitMQ", err)
			return nil, err
		}

		producer, err := rabbitadapter.NewViewProducer(s.rabbitMQ, cfg.RabbitMQ.Exchange, string(cfg.Mode))
		if err != nil {
			log.Error(ctx, "Failed to setup view event producer", err)
			return nil, err
		}
		publisher = producer
	}

	service := dashboard.New(ds, dashboard.SliderBounds{
		Min:  cfg.Slider.Min,
		Max:  cfg.Slider.Max,
		Step: cfg.Slider.Step,
	}, publisher, log)

	s.hub = ws.NewConnHub(log)

	s.httpServer, err = server.New(cfg, service, render.NewSVGRenderer(render.DefaultWidth, render.DefaultHeight), s.hub, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return s, nil
}

func (s *DashboardService) newLoader(ctx context.Context) (Loader, error) {
	switch s.cfg.Dataset.Source {
	case types.SourceCSV:
		return dataset.NewCSVLoader(s.cfg.Dataset.Path, s.log), nil
	case types.SourcePostgres:
		db, err := postgres.New(ctx, s.cfg.Database)
		if err != nil {
			return nil, err
		}
		s.postgresDB = db
		return dataset.NewPostgresLoader(trm.New(db.Pool), s.cfg.Dataset.Table, s.log)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedSource, s.cfg.Dataset.Source)
	}
}

func (s *DashboardService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "dashboard service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "Dashboard service has been started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

func (s *DashboardService) close(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	// hijacked websocket connections are not tracked by http.Server.Shutdown
	if s.hub != nil {
		s.hub.Close()
	}

	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.Close(ctx); err != nil {
			s.log.Warn(ctx, "Failed to close RabbitMQ connection", "error", err.Error())
		}
	}

	if s.postgresDB != nil {
		s.postgresDB.Close()
	}
}
