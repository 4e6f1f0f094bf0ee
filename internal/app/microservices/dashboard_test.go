package microservices

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Temutjin2k/launch-dashboard/config"
	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
)

func testConfig(path string) config.Config {
	cfg := config.Config{Mode: types.DashboardService}
	cfg.HTTP.Host, cfg.HTTP.Port = "127.0.0.1", "0"
	cfg.Dataset.Source, cfg.Dataset.Path = types.SourceCSV, path
	cfg.Slider.Max, cfg.Slider.Step = 10000, 1000
	return cfg
}

func TestNewDashboard_FromCSV(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join("..", "..", "adapter", "dataset", "testdata", "launches.csv")

	s, err := NewDashboard(ctx, testConfig(path), logger.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.httpServer == nil || s.hub == nil {
		t.Fatalf("server and hub must be initialized")
	}
	if s.rabbitMQ != nil || s.postgresDB != nil {
		t.Fatalf("optional backends must stay disabled")
	}
	s.close(ctx)
}

func TestNewDashboard_MissingDataset(t *testing.T) {
	_, err := NewDashboard(context.Background(), testConfig(filepath.Join(t.TempDir(), "absent.csv")), logger.NewNop())
	if err == nil {
		t.Fatalf("expected error for missing dataset")
	}
}

func TestNewDashboard_UnsupportedSource(t *testing.T) {
	cfg := testConfig("")
	cfg.Dataset.Source = "parquet"

	_, err := NewDashboard(context.Background(), cfg, logger.NewNop())
	if !errors.Is(err, types.ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource, got %v", err)
	}
}
