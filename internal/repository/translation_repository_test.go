package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"you_translator/internal/model"
	"you_translator/internal/repository"
)

func createTranslation(t *testing.T, db *gorm.DB, userID uuid.UUID, score float64, mode model.PracticeMode, level model.Proficiency, createdAt time.Time) *model.Translation {
	t.Helper()
	translation := &model.Translation{
		ID:              uuid.New(),
		UserID:          userID,
		OriginalPhrase:  "Bonjour",
		UserTranslation: "Hello",
		Score:           score,
		Tips:            model.StringList{"tip"},
		PracticeMode:    mode,
		SourceLanguage:  model.LanguageFrench,
		DifficultyLevel: level,
		CreatedAt:       createdAt,
	}
	require.NoError(t, repository.NewGormTranslationRepository().Create(context.Background(), db, translation))
	return translation
}

func TestTranslationRepository_ListFindDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormTranslationRepository()
	user := createUser(t, db, "ana@example.com", true)
	other := createUser(t, db, "bia@example.com", true)

	base := time.Now().Add(-time.Hour)
	oldest := createTranslation(t, db, user.ID, 6, model.PracticeModeAuto, model.ProficiencyBasic, base)
	middle := createTranslation(t, db, user.ID, 8, model.PracticeModeManual, model.ProficiencyBasic, base.Add(time.Minute))
	newest := createTranslation(t, db, user.ID, 9.5, model.PracticeModeAuto, model.ProficiencyIntermediate, base.Add(2*time.Minute))
	createTranslation(t, db, other.ID, 10, model.PracticeModeAuto, model.ProficiencyAdvanced, base)

	t.Run("正常系: 新しい順", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, db, user.ID, 0)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []uuid.UUID{newest.ID, middle.ID, oldest.ID}, []uuid.UUID{list[0].ID, list[1].ID, list[2].ID})
		assert.Equal(t, model.StringList{"tip"}, list[0].Tips)
	})

	t.Run("正常系: limit", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, db, user.ID, 2)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("正常系: 取得と削除", func(t *testing.T) {
		got, err := repo.FindByID(ctx, db, middle.ID)
		require.NoError(t, err)
		assert.Equal(t, 8.0, got.Score)

		require.NoError(t, repo.Delete(ctx, db, middle.ID))
		_, err = repo.FindByID(ctx, db, middle.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, db, middle.ID), model.ErrNotFound)
	})

	t.Run("正常系: 全ユーザーのスコア", func(t *testing.T) {
		scores, err := repo.ListScores(ctx, db)
		require.NoError(t, err)
		sums := map[uuid.UUID]float64{}
		for _, sp := range scores {
			sums[sp.UserID] += sp.Score
		}
		assert.Equal(t, 15.5, sums[user.ID])
		assert.Equal(t, 10.0, sums[other.ID])
	})
}

func TestTranslationRepository_StatsAndCounters(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormTranslationRepository()
	user := createUser(t, db, "ana@example.com", true)
	now := time.Now()

	t.Run("正常系: レコードなし", func(t *testing.T) {
		stats, err := repo.StatsByUser(ctx, db, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0.0, stats.AverageScore)
		assert.Equal(t, 0, stats.ByMode[model.PracticeModeAuto])

		counters, err := repo.CountersByUser(ctx, db, user.ID)
		require.NoError(t, err)
		assert.Equal(t, model.UserCounters{}, counters)
	})

	createTranslation(t, db, user.ID, 8, model.PracticeModeAuto, model.ProficiencyBasic, now)
	createTranslation(t, db, user.ID, 6, model.PracticeModeManual, model.ProficiencyBasic, now)
	createTranslation(t, db, user.ID, 9.5, model.PracticeModeAuto, model.ProficiencyAdvanced, now)

	t.Run("正常系: 集計", func(t *testing.T) {
		stats, err := repo.StatsByUser(ctx, db, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 7.8, stats.AverageScore)
		assert.Equal(t, 2, stats.ByMode[model.PracticeModeAuto])
		assert.Equal(t, 1, stats.ByMode[model.PracticeModeManual])
		assert.Equal(t, 2, stats.ByDifficulty[model.ProficiencyBasic])
		assert.Equal(t, 0, stats.ByDifficulty[model.ProficiencyIntermediate])
		assert.Equal(t, 1, stats.ByDifficulty[model.ProficiencyAdvanced])
	})

	t.Run("正常系: xp_score と正解率", func(t *testing.T) {
		counters, err := repo.CountersByUser(ctx, db, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 235, counters.XPScore)
		assert.Equal(t, 3, counters.TotalTranslations)
		assert.Equal(t, 66.7, counters.HitPercentage)
	})
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewGormTokenRepository()
	user := createUser(t, db, "ana@example.com", true)

	require.NoError(t, repo.CreateVerificationToken(ctx, db, &model.UserVerificationToken{Token: "verify-1", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.CreatePasswordResetToken(ctx, db, &model.PasswordResetToken{Token: "reset-1", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}))

	v, err := repo.FindVerificationToken(ctx, db, "verify-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, v.UserID)

	r, err := repo.FindPasswordResetToken(ctx, db, "reset-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, r.UserID)

	// 種類が違うトークンとしては見つからない
	_, err = repo.FindPasswordResetToken(ctx, db, "verify-1")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, repo.DeleteVerificationToken(ctx, db, "verify-1"))
	require.NoError(t, repo.DeletePasswordResetToken(ctx, db, "reset-1"))
	_, err = repo.FindVerificationToken(ctx, db, "verify-1")
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = repo.FindPasswordResetToken(ctx, db, "reset-1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
