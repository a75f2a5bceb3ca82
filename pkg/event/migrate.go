package event

import (
	"fmt"

	"github.com/apothek/sagacore/pkg/errmodel"
)

// MigrateFunc transforms a payload from one schema version to the next.
type MigrateFunc func(payload map[string]any) (map[string]any, error)

// Migrator holds the chains of per-version payload transforms, keyed by
// (event type, from-version). It is built once at process start and passed to
// the replay service and rehydration path as immutable configuration.
type Migrator struct {
	steps map[string]map[int]MigrateFunc
}

// NewMigrator returns an empty migrator.
func NewMigrator() *Migrator {
	return &Migrator{steps: map[string]map[int]MigrateFunc{}}
}

// Register adds the step migrating eventType payloads from fromVersion to
// fromVersion+1. Registering the same step twice is an error.
func (m *Migrator) Register(eventType string, fromVersion int, fn MigrateFunc) error {
	if eventType == "" {
		return errmodel.Validation("empty_event_type", "event type is empty", nil)
	}
	if fromVersion < 1 {
		return errmodel.Validation("bad_version", "from version must be >= 1", map[string]any{"event_type": eventType, "version": fromVersion})
	}
	if fn == nil {
		return errmodel.Validation("nil_migrator", "migrator func is nil", map[string]any{"event_type": eventType, "version": fromVersion})
	}
	byVersion := m.steps[eventType]
	if byVersion == nil {
		byVersion = map[int]MigrateFunc{}
		m.steps[eventType] = byVersion
	}
	if _, exists := byVersion[fromVersion]; exists {
		return errmodel.Validation("duplicate_migrator", "migrator step already registered", map[string]any{"event_type": eventType, "version": fromVersion})
	}
	byVersion[fromVersion] = fn
	return nil
}

// Migrate walks the payload from one schema version to another, applying each
// registered step in order. A missing step fails with a migration error naming
// the exact (event type, version) pair.
func (m *Migrator) Migrate(eventType string, from, to int, payload map[string]any) (map[string]any, error) {
	if from == to {
		return payload, nil
	}
	if from > to {
		return nil, errmodel.Migration("backward_migration", "cannot migrate to an older version", map[string]any{"event_type": eventType, "from": from, "to": to})
	}
	current := payload
	for v := from; v < to; v++ {
		fn := m.steps[eventType][v]
		if fn == nil {
			return nil, gapError(eventType, v)
		}
		next, err := fn(current)
		if err != nil {
			return nil, errmodel.New(errmodel.CategoryMigration, "migration_step_failed",
				fmt.Sprintf("migrating %s from version %d failed", eventType, v),
				map[string]any{"event_type": eventType, "version": v}, err)
		}
		current = next
	}
	return current, nil
}

// HasPath reports whether every step between from and to is registered,
// without applying any of them.
func (m *Migrator) HasPath(eventType string, from, to int) bool {
	if from >= to {
		return from == to
	}
	for v := from; v < to; v++ {
		if m.steps[eventType][v] == nil {
			return false
		}
	}
	return true
}

func gapError(eventType string, version int) error {
	return errmodel.Migration("migration_gap",
		fmt.Sprintf("no migrator registered for %s version %d", eventType, version),
		map[string]any{"event_type": eventType, "version": version})
}

// IsMigrationGap reports whether err is a missing-migration-step failure.
func IsMigrationGap(err error) bool {
	ce := errmodel.From(err)
	return ce != nil && ce.Category == errmodel.CategoryMigration && ce.Code == "migration_gap"
}
