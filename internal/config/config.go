package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	singleConfig *Config
	once         sync.Once
	onceErr      error
)

type Config struct {
	Service *svcConfig
	Log     *logConfig
	Planner *plannerConfig
}

type svcConfig struct {
	Address        string   `envconfig:"TOWER_PLANNER_ADDRESS" default:":3443" validate:"required"`
	MetricsAddress string   `envconfig:"TOWER_PLANNER_METRICS_ADDRESS" default:":8080" validate:"required"`
	AllowedOrigins []string `envconfig:"TOWER_PLANNER_ALLOWED_ORIGINS" default:"*"`
}

type logConfig struct {
	Level      string `envconfig:"TOWER_PLANNER_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	File       string `envconfig:"TOWER_PLANNER_LOG_FILE" default:""`
	MaxSizeMB  int    `envconfig:"TOWER_PLANNER_LOG_MAX_SIZE_MB" default:"10" validate:"gte=1"`
	MaxBackups int    `envconfig:"TOWER_PLANNER_LOG_MAX_BACKUPS" default:"3" validate:"gte=0"`
	MaxAgeDays int    `envconfig:"TOWER_PLANNER_LOG_MAX_AGE_DAYS" default:"28" validate:"gte=0"`
}

type plannerConfig struct {
	HeightModel string `envconfig:"TOWER_PLANNER_HEIGHT_MODEL" default:"tiered" validate:"oneof=tiered linear"`
	ExportDir   string `envconfig:"TOWER_PLANNER_EXPORT_DIR" default:"."`
	// MinLiftRatio is the share of the full lift used for the best case of the tiered model.
	MinLiftRatio float64 `envconfig:"TOWER_PLANNER_MIN_LIFT_RATIO" default:"0.1" validate:"gte=0,lte=1"`
}

// New loads the process configuration once. Later calls return the same value.
func New() (*Config, error) {
	once.Do(func() {
		singleConfig, onceErr = Load()
	})
	return singleConfig, onceErr
}

// Load reads an optional .env file (or the given files), then the
// TOWER_PLANNER_* environment, and validates the result.
// Variables already set in the environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		Service: new(svcConfig),
		Log:     new(logConfig),
		Planner: new(plannerConfig),
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
