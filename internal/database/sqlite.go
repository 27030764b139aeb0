// Package database owns the SQLite handle, the persisted models and the
// schema migration. The schema is created idempotently so opening the same
// file again never loses data.
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aicoach/internal/config"
	"aicoach/internal/logger"
)

// NewSQLiteDB opens (or creates) the database file, enables foreign key
// enforcement and migrates the schema. The returned handle is shared by all
// repositories for the lifetime of the process.
func NewSQLiteDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The DSN flag covers pooled connections; this covers the one already
	// open and doubles as a connectivity check.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := db.AutoMigrate(
		&User{},
		&UserProfile{},
		&Plan{},
		&ProgressEntry{},
		&ChatMessage{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database opened and migrations completed", "path", cfg.Path)
	return db, nil
}
