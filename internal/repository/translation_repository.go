//go:generate mockery --name TranslationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"you_translator/internal/middleware"
	"you_translator/internal/model"
)

type TranslationRepository interface {
	Create(ctx context.Context, db *gorm.DB, translation *model.Translation) error
	FindByID(ctx context.Context, db *gorm.DB, translationID uuid.UUID) (*model.Translation, error)
	// ListByUser は新しい順に最大 limit 件を返します
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.Translation, error)
	Delete(ctx context.Context, db *gorm.DB, translationID uuid.UUID) error
	// ListScores は全レコードの (user_id, score) を返します
	ListScores(ctx context.Context, db *gorm.DB) ([]model.ScorePair, error)
	StatsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.TranslationStats, error)
	CountersByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (model.UserCounters, error)
}

type gormTranslationRepository struct{}

func NewGormTranslationRepository() TranslationRepository {
	return &gormTranslationRepository{}
}

func (r *gormTranslationRepository) Create(ctx context.Context, db *gorm.DB, translation *model.Translation) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(translation).Error; err != nil {
		logger.Error("Error creating translation in DB", "error", err, "user_id", translation.UserID.String())
		return fmt.Errorf("gormTranslationRepository.Create: %w", err)
	}
	return nil
}

func (r *gormTranslationRepository) FindByID(ctx context.Context, db *gorm.DB, translationID uuid.UUID) (*model.Translation, error) {
	logger := middleware.GetLogger(ctx)
	var translation model.Translation
	if err := db.WithContext(ctx).Where("id = ?", translationID).First(&translation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding translation by ID", "error", err, "translation_id", translationID.String())
		return nil, fmt.Errorf("gormTranslationRepository.FindByID: %w", err)
	}
	return &translation, nil
}

func (r *gormTranslationRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.Translation, error) {
	logger := middleware.GetLogger(ctx)
	var translations []*model.Translation
	q := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&translations).Error; err != nil {
		logger.Error("Error listing translations", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormTranslationRepository.ListByUser: %w", err)
	}
	return translations, nil
}

func (r *gormTranslationRepository) Delete(ctx context.Context, db *gorm.DB, translationID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("id = ?", translationID).Delete(&model.Translation{})
	if result.Error != nil {
		logger.Error("Error deleting translation", "error", result.Error, "translation_id", translationID.String())
		return fmt.Errorf("gormTranslationRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTranslationRepository) ListScores(ctx context.Context, db *gorm.DB) ([]model.ScorePair, error) {
	logger := middleware.GetLogger(ctx)
	var pairs []model.ScorePair
	err := db.WithContext(ctx).Model(&model.Translation{}).
		Select("user_id, score").
		Order("created_at ASC").
		Scan(&pairs).Error
	if err != nil {
		logger.Error("Error listing translation scores", "error", err)
		return nil, fmt.Errorf("gormTranslationRepository.ListScores: %w", err)
	}
	return pairs, nil
}

type statRow struct {
	Score           float64
	PracticeMode    model.PracticeMode
	DifficultyLevel model.Proficiency
}

func (r *gormTranslationRepository) StatsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.TranslationStats, error) {
	logger := middleware.GetLogger(ctx)
	var rows []statRow
	err := db.WithContext(ctx).Model(&model.Translation{}).
		Select("score, practice_mode, difficulty_level").
		Where("user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		logger.Error("Error fetching translation stats", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormTranslationRepository.StatsByUser: %w", err)
	}

	stats := model.NewTranslationStats()
	var sum float64
	for _, row := range rows {
		sum += row.Score
		if _, ok := stats.ByMode[row.PracticeMode]; ok {
			stats.ByMode[row.PracticeMode]++
		}
		if _, ok := stats.ByDifficulty[row.DifficultyLevel]; ok {
			stats.ByDifficulty[row.DifficultyLevel]++
		}
	}
	stats.Total = len(rows)
	if stats.Total > 0 {
		stats.AverageScore = math.Round(sum/float64(stats.Total)*10) / 10
	}
	return stats, nil
}

// CountersByUser は xp_score (合計スコア×10)、件数、正解率(%) を計算します
func (r *gormTranslationRepository) CountersByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (model.UserCounters, error) {
	logger := middleware.GetLogger(ctx)
	var scores []float64
	err := db.WithContext(ctx).Model(&model.Translation{}).
		Where("user_id = ?", userID).
		Pluck("score", &scores).Error
	if err != nil {
		logger.Error("Error fetching translation counters", "error", err, "user_id", userID.String())
		return model.UserCounters{}, fmt.Errorf("gormTranslationRepository.CountersByUser: %w", err)
	}

	var sum float64
	hits := 0
	for _, s := range scores {
		sum += s
		if s >= model.HitThreshold {
			hits++
		}
	}
	counters := model.UserCounters{
		XPScore:           int(math.Round(sum * 10)),
		TotalTranslations: len(scores),
	}
	if len(scores) > 0 {
		counters.HitPercentage = math.Round(float64(hits)/float64(len(scores))*1000) / 10
	}
	return counters, nil
}
