package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/configparser"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{}
	if err := configparser.ParseEnv(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Mode = types.DashboardService
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	if cfg.HTTP.Port != "8050" || !cfg.HTTP.Compression {
		t.Fatalf("unexpected http defaults: %+v", cfg.HTTP)
	}
	if cfg.Dataset.Source != types.SourceCSV || cfg.Dataset.Path != "spacex_launch_dash.csv" {
		t.Fatalf("unexpected dataset defaults: %+v", cfg.Dataset)
	}
	if cfg.Slider.Min != 0 || cfg.Slider.Max != 10000 || cfg.Slider.Step != 1000 {
		t.Fatalf("unexpected slider defaults: %+v", cfg.Slider)
	}
	if cfg.RabbitMQ.Enabled {
		t.Fatalf("rabbitmq must be off by default")
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("defaults must be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Dataset.Source = "s3"
	if err := cfg.validate(); !errors.Is(err, types.ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource, got %v", err)
	}

	cfg = defaultConfig(t)
	cfg.Slider.Min, cfg.Slider.Max = 5000, 1000
	if err := cfg.validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = defaultConfig(t)
	cfg.LogLevel = "LOUD"
	if err := cfg.validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p@ss", Database: "launches"}
	if got := db.GetDSN(); got != "postgres://u:p%40ss@db:5432/launches?sslmode=disable" {
		t.Fatalf("unexpected dsn %s", got)
	}

	mq := RabbitMQConfig{Host: "mq", Port: "5672", User: "guest", Password: "guest"}
	if got := mq.GetDSN(); got != "amqp://guest:guest@mq:5672/" {
		t.Fatalf("unexpected dsn %s", got)
	}
}

func TestMaskedYAML(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Database.Password = "topsecret"

	out, err := MaskedYAML(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "topsecret") {
		t.Fatalf("secrets leaked:\n%s", out)
	}
	if !strings.Contains(string(out), secretMask) {
		t.Fatalf("expected masked values:\n%s", out)
	}
	if cfg.Database.Password != "topsecret" {
		t.Fatalf("masking must not modify the original config")
	}
}
