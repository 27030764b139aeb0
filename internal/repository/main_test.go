package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aicoach/internal/config"
	"aicoach/internal/database"
)

// newTestDB opens a throwaway database file with the real migration path,
// so foreign keys and indexes behave exactly as in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(config.DBConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	return db
}

// newTestUser inserts a user and returns its id.
func newTestUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	id, err := NewUserRepository(db).Insert(context.Background(), email, "hash-"+email)
	require.NoError(t, err)
	return id
}
