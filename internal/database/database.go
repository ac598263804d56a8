// Package database owns the embedded SQLite store: connection lifecycle,
// versioned schema migrations, and baseline row seeding.
package database

import (
	"fmt"
	"sync"

	"budgetbites/internal/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager handles the store connection. It is constructed once at process
// start and injected into services; there is no implicit global handle.
type Manager struct {
	path string

	mu sync.Mutex
	db *gorm.DB
}

// NewManager creates a manager for the database file at path.
// The connection is not opened until Open is called.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Connect opens the store at path without migrating or seeding it. Most
// callers want Open on a Manager instead; the migrate CLI uses Connect
// directly so it can inspect and change schema state explicitly.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	// The store is single-writer; a second connection would only produce
	// SQLITE_BUSY errors under gorm's default pooling.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Open connects to the store, applies pending migrations, and seeds
// baseline singleton rows. It is idempotent: if the connection is already
// open it returns immediately, so concurrent cold-start callers are safe.
func (m *Manager) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return nil
	}

	db, err := Connect(m.path)
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}
	if err := SeedDefaults(db); err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}

	m.db = db
	logger.Get().Infow("database ready", "path", m.path, "schema_version", SchemaVersion(db))
	return nil
}

// DB returns the underlying GORM database instance.
// It panics if Open has not been called.
func (m *Manager) DB() *gorm.DB {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		panic("database: Open must be called before DB")
	}
	return m.db
}

// Close closes the underlying connection. Called once at process shutdown.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}
	m.db = nil
	return sqlDB.Close()
}
