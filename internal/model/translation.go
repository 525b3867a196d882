package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type PracticeMode string

const (
	PracticeModeAuto   PracticeMode = "auto"
	PracticeModeManual PracticeMode = "manual"
)

// HitThreshold 以上のスコアを「正解」として hit_percentage を計算します
const HitThreshold = 7.0

// NormalizeScore はバックエンドに保存するスコアを小数第1位に丸めます (7.666 -> 7.7)
func NormalizeScore(score float64) float64 {
	return math.Round(score*10) / 10
}

// Translation はバックエンドに保存される翻訳レコードです
type Translation struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	OriginalPhrase     string       `gorm:"not null" json:"original_phrase"`
	UserTranslation    string       `gorm:"not null" json:"user_translation"`
	CorrectTranslation string       `json:"correct_translation"`
	Score              float64      `gorm:"not null" json:"score"`
	Explanation        string       `json:"explanation"`
	Tips               StringList   `gorm:"type:text" json:"tips"`
	PracticeMode       PracticeMode `gorm:"type:varchar(10);default:auto" json:"practice_mode"`
	SourceLanguage     Language     `gorm:"type:varchar(20)" json:"source_language"`
	DifficultyLevel    Proficiency  `gorm:"type:varchar(20)" json:"difficulty_level"`
	CreatedAt          time.Time    `gorm:"index" json:"created_at"`
}

func (Translation) TableName() string {
	return "translations"
}

// SaveTranslationParams は翻訳レコード保存の入力です
type SaveTranslationParams struct {
	OriginalPhrase     string       `json:"original_phrase" validate:"required,max=500"`
	UserTranslation    string       `json:"user_translation" validate:"required,max=1000"`
	CorrectTranslation string       `json:"correct_translation"`
	Score              float64      `json:"score" validate:"gte=0,lte=10"`
	Explanation        string       `json:"explanation"`
	Tips               []string     `json:"tips"`
	PracticeMode       PracticeMode `json:"practice_mode" validate:"omitempty,oneof=auto manual"`
	SourceLanguage     Language     `json:"source_language" validate:"omitempty,oneof=Portuguese Spanish French"`
	DifficultyLevel    Proficiency  `json:"difficulty_level" validate:"omitempty,oneof=Basic Intermediate Advanced"`
}

// ScorePair はランキング集計用の (user_id, score) です
type ScorePair struct {
	UserID uuid.UUID
	Score  float64
}

// TranslationStats はユーザーの翻訳統計です
type TranslationStats struct {
	Total        int                  `json:"total"`
	AverageScore float64              `json:"average_score"`
	ByMode       map[PracticeMode]int `json:"by_mode"`
	ByDifficulty map[Proficiency]int  `json:"by_difficulty"`
}

// NewTranslationStats は全キーを 0 で持つ統計を返します
func NewTranslationStats() *TranslationStats {
	return &TranslationStats{
		ByMode: map[PracticeMode]int{
			PracticeModeAuto:   0,
			PracticeModeManual: 0,
		},
		ByDifficulty: map[Proficiency]int{
			ProficiencyBasic:        0,
			ProficiencyIntermediate: 0,
			ProficiencyAdvanced:     0,
		},
	}
}

// TranslationSummary はホーム画面のカード用の要約です
type TranslationSummary struct {
	Total        int     `json:"total"`
	AverageScore float64 `json:"average_score"`
}
