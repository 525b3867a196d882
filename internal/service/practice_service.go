package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/webutil"
)

//go:generate mockery --name PracticeService --output ./mocks --outpkg mocks --case=underscore
type PracticeService interface {
	GeneratePhrase(ctx context.Context, userID uuid.UUID) (*model.GeneratePhraseResponse, error)
	// Submit は採点し、ローカル統計・バックエンド・ローカル履歴の順に記録します
	Submit(ctx context.Context, userID uuid.UUID, req *model.SubmitAttemptRequest) (*model.SubmitAttemptResult, error)
}

type practiceService struct {
	sync      SyncService
	storage   StorageService
	evaluator Evaluator
	now       func() time.Time
}

func NewPracticeService(sync SyncService, storage StorageService, evaluator Evaluator) PracticeService {
	return &practiceService{
		sync:      sync,
		storage:   storage,
		evaluator: evaluator,
		now:       time.Now,
	}
}

func (s *practiceService) GeneratePhrase(ctx context.Context, userID uuid.UUID) (*model.GeneratePhraseResponse, error) {
	profile, err := s.sync.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	phrase := s.evaluator.GeneratePhrase(ctx, profile.NativeLanguage, profile.Proficiency)
	return &model.GeneratePhraseResponse{
		Phrase:     phrase,
		ExerciseID: uuid.NewString(),
		Language:   profile.NativeLanguage,
		Level:      profile.Proficiency,
	}, nil
}

func (s *practiceService) Submit(ctx context.Context, userID uuid.UUID, req *model.SubmitAttemptRequest) (*model.SubmitAttemptResult, error) {
	logger := middleware.GetLogger(ctx)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	profile, err := s.sync.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	evaluation := s.evaluator.Evaluate(ctx, model.EvaluationRequest{
		OriginalPhrase:  req.OriginalPhrase,
		UserTranslation: req.UserTranslation,
		Level:           profile.Proficiency,
		Language:        profile.NativeLanguage,
	})

	ns := UserNamespace(userID)
	updated, err := s.storage.UpdateProfileStats(ctx, ns, evaluation.Score)
	if err != nil {
		return nil, err
	}

	result := &model.SubmitAttemptResult{Profile: updated}

	translation, err := s.sync.SaveTranslation(ctx, userID, &model.SaveTranslationParams{
		OriginalPhrase:     req.OriginalPhrase,
		UserTranslation:    req.UserTranslation,
		CorrectTranslation: evaluation.Correction,
		Score:              evaluation.Score,
		Explanation:        evaluation.Explanation,
		Tips:               evaluation.Tips,
		PracticeMode:       req.PracticeMode,
		SourceLanguage:     profile.NativeLanguage,
		DifficultyLevel:    profile.Proficiency,
	})
	if err != nil {
		// ローカルの記録は残し、保存失敗だけを呼び出し元に伝える
		logger.Warn("Attempt evaluated but not saved to backend", "error", err)
	} else {
		result.Translation = translation
		result.Saved = true
	}

	exerciseID := req.ExerciseID
	if exerciseID == "" {
		exerciseID = uuid.NewString()
	}
	attempt := model.ExerciseAttempt{
		ID:              uuid.NewString(),
		ExerciseID:      exerciseID,
		UserID:          userID.String(),
		OriginalPhrase:  req.OriginalPhrase,
		UserTranslation: req.UserTranslation,
		Evaluation:      evaluation,
		Timestamp:       s.now().UTC(),
	}
	s.storage.SaveAttempt(ctx, ns, attempt)
	result.Attempt = attempt

	logger.Info("Attempt submitted", "score", evaluation.Score, "saved", result.Saved)
	return result, nil
}
