package service

import (
	"context"
	"log/slog"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
)

// FallbackPhrase は出題に失敗したときに使うフレーズです
const FallbackPhrase = "Olá, como vai você?"

// FallbackEvaluation は評価に失敗したときに返す結果です
func FallbackEvaluation() model.EvaluationResult {
	return model.EvaluationResult{
		Score:       0,
		Correction:  "Could not evaluate. Please try again.",
		Explanation: "Ocorreu um erro ao processar sua resposta.",
		Tips:        []string{"Tente novamente em instantes."},
	}
}

// Evaluator は AI による出題と採点を行います。
// どちらのメソッドもエラーを返さず、失敗時はフォールバック値を返します。
//
//go:generate mockery --name Evaluator --output ./mocks --outpkg mocks --case=underscore
type Evaluator interface {
	GeneratePhrase(ctx context.Context, language model.Language, level model.Proficiency) string
	Evaluate(ctx context.Context, req model.EvaluationRequest) model.EvaluationResult
}

// OfflineEvaluator は API キーが無い開発環境用です
type OfflineEvaluator struct{}

func (OfflineEvaluator) GeneratePhrase(ctx context.Context, language model.Language, level model.Proficiency) string {
	middleware.GetLogger(ctx).Debug("Offline evaluator: returning fallback phrase")
	return FallbackPhrase
}

func (OfflineEvaluator) Evaluate(ctx context.Context, req model.EvaluationRequest) model.EvaluationResult {
	middleware.GetLogger(ctx).Debug("Offline evaluator: returning fallback evaluation")
	return FallbackEvaluation()
}

// NewEvaluator は設定に応じた Evaluator を生成します
func NewEvaluator(cfg *config.Config) Evaluator {
	logger := slog.Default()
	switch cfg.Evaluator.Type {
	case "gemini":
		if cfg.Evaluator.APIKey == "" {
			logger.Warn("Gemini evaluator selected but api_key is empty, falling back to offline evaluator")
			return OfflineEvaluator{}
		}
		logger.Info("Initializing Gemini evaluator...", "model", cfg.Evaluator.Model)
		return NewGeminiEvaluator(&cfg.Evaluator)
	case "offline":
		logger.Info("Initializing offline evaluator...")
		return OfflineEvaluator{}
	default:
		logger.Warn("Unknown evaluator type, defaulting to offline evaluator", "type", cfg.Evaluator.Type)
		return OfflineEvaluator{}
	}
}
