// Package config loads runtime settings from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/apothek/sagacore/pkg/errmodel"
	"github.com/apothek/sagacore/pkg/saga"
)

// Config is the process-wide runtime configuration.
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"sqlite::memory:"`
	ServiceVersion string `env:"SAGACORE_VERSION"`
	TraceStdout    bool   `env:"TRACE_STDOUT" envDefault:"false"`

	Saga SagaConfig `envPrefix:"SAGA_"`
}

// SagaConfig tunes retry and idempotency behavior shared by all sagas.
type SagaConfig struct {
	MaxAttempts       int   `env:"MAX_ATTEMPTS" envDefault:"5"`
	RetryScheduleDays []int `env:"RETRY_SCHEDULE_DAYS" envDefault:"1,3,7,14,30"`
	IdempotencyTTLDays int  `env:"IDEMPOTENCY_TTL_DAYS" envDefault:"30"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errmodel.System("config_parse_failed", "environment parse failed", nil, err)
	}
	if err := cfg.Saga.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c SagaConfig) validate() error {
	if c.MaxAttempts < 1 {
		return errmodel.Validation("bad_max_attempts", "max attempts must be at least 1",
			map[string]any{"max_attempts": c.MaxAttempts})
	}
	if len(c.RetryScheduleDays) < c.MaxAttempts-1 {
		return errmodel.Validation("short_retry_schedule", "retry schedule must cover max attempts minus one",
			map[string]any{"schedule_len": len(c.RetryScheduleDays), "max_attempts": c.MaxAttempts})
	}
	if c.IdempotencyTTLDays < 1 {
		return errmodel.Validation("bad_idempotency_ttl", "idempotency TTL must be at least one day",
			map[string]any{"ttl_days": c.IdempotencyTTLDays})
	}
	for _, d := range c.RetryScheduleDays {
		if d < 0 {
			return errmodel.Validation("bad_retry_schedule", "retry delays must be non-negative",
				map[string]any{"days": c.RetryScheduleDays})
		}
	}
	return nil
}

// SagaConfig converts the tuning into the shape sagas consume.
func (c SagaConfig) Config() saga.Config {
	return saga.Config{
		MaxAttempts:   c.MaxAttempts,
		RetrySchedule: saga.ScheduleDays(c.RetryScheduleDays...),
	}
}

// IdempotencyTTL is the processed-marker lifetime.
func (c SagaConfig) IdempotencyTTL() time.Duration {
	return saga.Days(c.IdempotencyTTLDays)
}
