package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"you_translator/internal/model"
	"you_translator/internal/repository"
)

// newTestDB はテストごとに独立したインメモリDBを作り、マイグレーションします
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

// createTestUser はオンボーディング済みのユーザーを作成します
func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		ID:             uuid.New(),
		Email:          email,
		Name:           "Test User",
		FirstName:      "Ana",
		MotherLanguage: model.LanguageCodeSpanish,
		CurrentLevel:   model.LevelCodeIntermediate,
		Enabled:        true,
		EmailConfirmed: true,
	}
	require.NoError(t, repository.NewGormUserRepository().Create(context.Background(), db, user))
	return user
}
