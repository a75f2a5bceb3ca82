package config

import (
	"testing"
	"time"

	"github.com/apothek/sagacore/pkg/errmodel"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseURL != "sqlite::memory:" {
		t.Fatalf("database url %q", cfg.DatabaseURL)
	}
	if cfg.Saga.MaxAttempts != 5 {
		t.Fatalf("max attempts %d", cfg.Saga.MaxAttempts)
	}
	if got := cfg.Saga.RetryScheduleDays; len(got) != 5 || got[0] != 1 || got[4] != 30 {
		t.Fatalf("schedule %v", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SAGA_MAX_ATTEMPTS", "3")
	t.Setenv("SAGA_RETRY_SCHEDULE_DAYS", "1,2")
	t.Setenv("SAGA_IDEMPOTENCY_TTL_DAYS", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	sc := cfg.Saga.Config()
	if sc.MaxAttempts != 3 || len(sc.RetrySchedule) != 2 {
		t.Fatalf("config %+v", sc)
	}
	if sc.RetrySchedule[1] != 48*time.Hour {
		t.Fatalf("delay %v", sc.RetrySchedule[1])
	}
	if cfg.Saga.IdempotencyTTL() != 7*24*time.Hour {
		t.Fatalf("ttl %v", cfg.Saga.IdempotencyTTL())
	}
}

func TestLoadRejectsShortSchedule(t *testing.T) {
	t.Setenv("SAGA_MAX_ATTEMPTS", "5")
	t.Setenv("SAGA_RETRY_SCHEDULE_DAYS", "1,3")

	_, err := Load()
	if !errmodel.IsCategory(err, errmodel.CategoryValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestLoadRejectsZeroAttempts(t *testing.T) {
	t.Setenv("SAGA_MAX_ATTEMPTS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("zero attempts accepted")
	}
}
