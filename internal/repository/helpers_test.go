package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"you_translator/internal/model"
	"you_translator/internal/repository"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestDB はテストごとに独立したインメモリの sqlite を NewDB で開きます
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB("sqlite", dsn, testLogger)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, enabled bool) *model.User {
	t.Helper()
	user := &model.User{
		ID:             uuid.New(),
		Email:          email,
		Name:           "User " + email,
		FirstName:      "Ana",
		MotherLanguage: model.LanguageCodeSpanish,
		CurrentLevel:   model.LevelCodeBeginner,
		Enabled:        enabled,
	}
	require.NoError(t, repository.NewGormUserRepository().Create(context.Background(), db, user))
	return user
}
