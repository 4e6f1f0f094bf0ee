package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"time"

	"github.com/Temutjin2k/launch-dashboard/internal/domain/types"
	"github.com/Temutjin2k/launch-dashboard/pkg/configparser"
	"github.com/Temutjin2k/launch-dashboard/pkg/logger"
)

// Flags
var (
	modeFlag = flag.String("mode", string(types.DashboardService), "application mode")
)

// Errors
var (
	ErrModeNotProvided = errors.New("mode flag not provided")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode     types.ServiceMode
		LogLevel string `env:"LOG_LEVEL" default:"INFO"`

		HTTP      HTTPConfig
		Dataset   DatasetConfig
		Slider    SliderConfig
		Database  DatabaseConfig
		RabbitMQ  RabbitMQConfig
		WebSocket WebSocketConfig
	}

	HTTPConfig struct {
		Host            string        `env:"HTTP_HOST" default:"0.0.0.0"`
		Port            string        `env:"HTTP_PORT" default:"8050"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWNTIMEOUT" default:"5s"`
		PrettyHTML      bool          `env:"HTTP_PRETTYHTML" default:"false"`
		Compression     bool          `env:"HTTP_COMPRESSION" default:"true"`
	}

	DatasetConfig struct {
		Source types.DatasetSource `env:"DATASET_SOURCE" default:"csv"`
		Path   string              `env:"DATASET_PATH" default:"spacex_launch_dash.csv"`
		Table  string              `env:"DATASET_TABLE" default:"spacex_launches"`
	}

	// SliderConfig bounds the payload control, not the data.
	SliderConfig struct {
		Min  float64 `env:"SLIDER_MIN" default:"0"`
		Max  float64 `env:"SLIDER_MAX" default:"10000"`
		Step float64 `env:"SLIDER_STEP" default:"1000"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"dashboard_user"`
		Password string `env:"DATABASE_PASSWORD" default:"dashboard_pass"`
		Database string `env:"DATABASE_DATABASE" default:"launches_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"4"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"1"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	RabbitMQConfig struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"false"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
		Exchange string `env:"RABBITMQ_EXCHANGE" default:"dashboard_events"`
	}

	WebSocketConfig struct {
		PingInterval time.Duration `env:"WEBSOCKET_PINGINTERVAL" default:"30s"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (c DatabaseConfig) PoolLimits() (maxConns, minConns int32, maxLifetime, maxIdle time.Duration) {
	return c.MaxConns, c.MinConns, c.MaxConnLifetime, c.MaxConnIdleTime
}

func (c RabbitMQConfig) GetDSN() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   "/",
	}
	return u.String()
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	// Parsing flags
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case types.SourceCSV:
		if c.Dataset.Path == "" {
			return fmt.Errorf("%w: dataset path must be provided", ErrInvalidConfig)
		}
	case types.SourcePostgres:
		if c.Dataset.Table == "" {
			return fmt.Errorf("%w: dataset table must be provided", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: %q", types.ErrUnsupportedSource, c.Dataset.Source)
	}

	if c.Slider.Max < c.Slider.Min || c.Slider.Step <= 0 {
		return fmt.Errorf("%w: slider needs min <= max and a positive step", ErrInvalidConfig)
	}

	if !logger.ValidateLogLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}
