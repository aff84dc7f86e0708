// Package migration bootstraps the database schema. Two strategies exist:
// gorm AutoMigrate driven by the persistence models (development default)
// and golang-migrate SQL scripts (explicit migrate command).
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"secdesk/internal/shared/logger"
)

type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured strategy. It is idempotent: running it
// again against an up-to-date schema changes nothing and returns no error.
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	if err := m.strategy.Migrate(db, models...); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

// EnsureSchema runs AutoMigrate over all persistence models.
func EnsureSchema(db *gorm.DB) error {
	return NewManager(NewGormAutoMigrateStrategy()).Migrate(db, AutoMigrateModels()...)
}
