package model

import "time"

// EvaluationResult は AI 評価の結果です。作成後は変更しません。
type EvaluationResult struct {
	Score       float64  `json:"score"`
	Correction  string   `json:"correction"`
	Explanation string   `json:"explanation"`
	Tips        []string `json:"tips"`
}

// ExerciseAttempt は1回の回答と評価の組です (ローカル履歴)
type ExerciseAttempt struct {
	ID              string           `json:"id"`
	ExerciseID      string           `json:"exercise_id"`
	UserID          string           `json:"user_id"`
	OriginalPhrase  string           `json:"original_phrase"`
	UserTranslation string           `json:"user_translation"`
	Evaluation      EvaluationResult `json:"evaluation"`
	Timestamp       time.Time        `json:"timestamp"`
}

// GeneratePhraseResponse は出題APIのレスポンス
type GeneratePhraseResponse struct {
	Phrase     string      `json:"phrase"`
	ExerciseID string      `json:"exercise_id"`
	Language   Language    `json:"language"`
	Level      Proficiency `json:"level"`
}

// SubmitAttemptRequest は回答送信APIのリクエストボディ
type SubmitAttemptRequest struct {
	ExerciseID      string       `json:"exercise_id"`
	OriginalPhrase  string       `json:"original_phrase" validate:"required,max=500"`
	UserTranslation string       `json:"user_translation" validate:"required,max=1000"`
	PracticeMode    PracticeMode `json:"practice_mode" validate:"omitempty,oneof=auto manual"`
}

// SubmitAttemptResult は回答送信の結果です。Saved が false ならバックエンドへの保存に失敗しています。
type SubmitAttemptResult struct {
	Attempt     ExerciseAttempt `json:"attempt"`
	Profile     *UserProfile    `json:"profile,omitempty"`
	Translation *Translation    `json:"translation,omitempty"`
	Saved       bool            `json:"saved"`
}

// EvaluationRequest は AI 評価の入力です
type EvaluationRequest struct {
	OriginalPhrase  string
	UserTranslation string
	Level           Proficiency
	Language        Language
}
