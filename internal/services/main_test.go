package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aicoach/internal/config"
	"aicoach/internal/database"
	"aicoach/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(config.DBConfig{
		Path: filepath.Join(t.TempDir(), "services.db"),
	})
	require.NoError(t, err)
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	id, err := repository.NewUserRepository(db).Insert(context.Background(), email, "hash")
	require.NoError(t, err)
	return id
}

// fakeAI records the last prompt and returns a canned reply or error.
type fakeAI struct {
	reply      string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeAI) Chat(_ context.Context, system, user string, _ float32, _ int) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	return f.reply, f.err
}
