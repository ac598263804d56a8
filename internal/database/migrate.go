package database

import (
	"errors"
	"fmt"
	"time"

	"budgetbites/internal/logger"

	"gorm.io/gorm"
)

// ErrNoDownMigration is returned by Rollback when the highest applied
// migration has no down scripts. Rolling back such a step is a usage error.
var ErrNoDownMigration = errors.New("no down migration defined for current version")

const createLedger = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER UNIQUE,
	name TEXT,
	applied_at TEXT
)`

// Migrate brings the store from its recorded version to the latest one.
// Each pending step runs its DDL plus the ledger insert in one transaction,
// so a crash mid-run leaves the ledger consistent with exactly the steps
// that committed. Any step failure aborts the run and is propagated; the
// store must be treated as unusable by the caller.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(createLedger).Error; err != nil {
		return fmt.Errorf("failed to create migration ledger: %w", err)
	}

	current := SchemaVersion(db)
	for _, step := range migrations {
		if step.Version <= current {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, stmt := range step.Up {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return tx.Exec(
				`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
				step.Version, step.Name, time.Now().UTC().Format(time.RFC3339),
			).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", step.Version, step.Name, err)
		}
		logger.Get().Infow("applied migration", "version", step.Version, "name", step.Name)
	}
	return nil
}

// SchemaVersion returns the highest applied migration version. An empty or
// unreadable ledger means "never migrated" and reports 0 rather than an
// error, so a fresh store migrates from the beginning.
func SchemaVersion(db *gorm.DB) int {
	var version int
	err := db.Raw(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version).Error
	if err != nil {
		return 0
	}
	return version
}

// Migrate applies pending migrations on an open manager.
func (m *Manager) Migrate() error {
	return Migrate(m.DB())
}

// Rollback undoes the highest applied migration on an open manager.
func (m *Manager) Rollback() error {
	return Rollback(m.DB())
}

// Rollback undoes the highest applied migration. Development use only:
// the down scripts and the ledger delete run in one transaction. Returns
// ErrNoDownMigration when the step defines no down scripts.
func Rollback(db *gorm.DB) error {
	current := SchemaVersion(db)
	if current == 0 {
		return fmt.Errorf("nothing to roll back: schema version is 0")
	}

	var step *Migration
	for i := range migrations {
		if migrations[i].Version == current {
			step = &migrations[i]
			break
		}
	}
	if step == nil {
		return fmt.Errorf("no migration defined for applied version %d", current)
	}
	if len(step.Down) == 0 {
		return ErrNoDownMigration
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range step.Down {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return tx.Exec(`DELETE FROM schema_migrations WHERE version = ?`, step.Version).Error
	})
	if err != nil {
		return fmt.Errorf("rollback of migration %d (%s) failed: %w", step.Version, step.Name, err)
	}

	logger.Get().Infow("rolled back migration", "version", step.Version, "name", step.Name)
	return nil
}
