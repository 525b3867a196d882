package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/repository"
)

// ローカルストア上のキー
const (
	profileStorageKey = "profile"
	historyStorageKey = "history"
	authStorageKey    = "auth"
)

// StorageService はユーザーごとの学習プロフィール・回答履歴・セッションの複製を保持します。
// 読み書きの失敗はログに残し、「存在しない」または何もしなかったものとして扱います。
//
//go:generate mockery --name StorageService --output ./mocks --outpkg mocks --case=underscore
type StorageService interface {
	// GetProfile は保存されたプロフィールを返します。無ければ nil です。
	GetProfile(ctx context.Context, namespace string) *model.UserProfile
	SaveProfile(ctx context.Context, namespace string, profile model.UserProfile)
	RemoveProfile(ctx context.Context, namespace string)
	InitializeDefault(ctx context.Context, namespace, name, email string, language model.Language, proficiency model.Proficiency) model.UserProfile
	UpdateProfileStats(ctx context.Context, namespace string, score float64) (*model.UserProfile, error)
	ApplyProfileUpdate(ctx context.Context, namespace string, update model.ProfileUpdate) (*model.UserProfile, error)

	GetAuthSession(ctx context.Context, namespace string) *model.AuthSession
	SetAuthSession(ctx context.Context, namespace string, session model.AuthSession)
	ClearAuthSession(ctx context.Context, namespace string)

	// GetHistory は新しい順の回答履歴を返します
	GetHistory(ctx context.Context, namespace string) []model.ExerciseAttempt
	SaveAttempt(ctx context.Context, namespace string, attempt model.ExerciseAttempt)
}

type storageService struct {
	store        repository.KVStore
	historyLimit int
	now          func() time.Time

	// プロフィールと履歴の read-modify-write を直列化する
	mu sync.Mutex
}

func NewStorageService(store repository.KVStore, cfg *config.Config) StorageService {
	limit := cfg.App.HistoryLimit
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	return &storageService{
		store:        store,
		historyLimit: limit,
		now:          time.Now,
	}
}

// --- 共通ヘルパー ---

func (s *storageService) readJSON(ctx context.Context, namespace, key string, dst interface{}) bool {
	logger := middleware.GetLogger(ctx).With("storage_key", key)
	raw, found, err := s.store.Get(ctx, namespace, key)
	if err != nil {
		logger.Error("Failed to read local storage", "error", err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Error("Failed to decode local storage value", "error", err)
		return false
	}
	return true
}

func (s *storageService) writeJSON(ctx context.Context, namespace, key string, value interface{}) bool {
	logger := middleware.GetLogger(ctx).With("storage_key", key)
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Error("Failed to encode local storage value", "error", err)
		return false
	}
	if err := s.store.Set(ctx, namespace, key, raw); err != nil {
		logger.Error("Failed to write local storage", "error", err)
		return false
	}
	return true
}

func (s *storageService) remove(ctx context.Context, namespace, key string) {
	if err := s.store.Delete(ctx, namespace, key); err != nil {
		middleware.GetLogger(ctx).Error("Failed to remove local storage value", "storage_key", key, "error", err)
	}
}

// --- プロフィール ---

func (s *storageService) GetProfile(ctx context.Context, namespace string) *model.UserProfile {
	var profile model.UserProfile
	if !s.readJSON(ctx, namespace, profileStorageKey, &profile) {
		return nil
	}
	return &profile
}

func (s *storageService) SaveProfile(ctx context.Context, namespace string, profile model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeJSON(ctx, namespace, profileStorageKey, profile)
}

func (s *storageService) RemoveProfile(ctx context.Context, namespace string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(ctx, namespace, profileStorageKey)
}

// InitializeDefault はカウンタ0・テーマ dark の新しいプロフィールを保存して返します
func (s *storageService) InitializeDefault(ctx context.Context, namespace, name, email string, language model.Language, proficiency model.Proficiency) model.UserProfile {
	profile := model.UserProfile{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		NativeLanguage: language,
		Proficiency:    proficiency,
		Theme:          model.ThemeDark,
	}
	s.SaveProfile(ctx, namespace, profile)
	middleware.GetLogger(ctx).Info("Local profile initialized", "profile_id", profile.ID)
	return profile
}

func (s *storageService) UpdateProfileStats(ctx context.Context, namespace string, score float64) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current model.UserProfile
	if !s.readJSON(ctx, namespace, profileStorageKey, &current) {
		middleware.GetLogger(ctx).Warn("UpdateProfileStats called without a local profile")
		return nil, model.NewAppError("PROFILE_NOT_FOUND", "Perfil não encontrado.", "", model.ErrNotFound)
	}

	updated := ApplyAttempt(current, score, s.now())
	s.writeJSON(ctx, namespace, profileStorageKey, updated)
	return &updated, nil
}

func (s *storageService) ApplyProfileUpdate(ctx context.Context, namespace string, update model.ProfileUpdate) (*model.UserProfile, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var current model.UserProfile
	if !s.readJSON(ctx, namespace, profileStorageKey, &current) {
		return nil, model.NewAppError("PROFILE_NOT_FOUND", "Perfil não encontrado.", "", model.ErrNotFound)
	}
	updated := update.Apply(current)
	s.writeJSON(ctx, namespace, profileStorageKey, updated)
	return &updated, nil
}

// --- セッション ---

func (s *storageService) GetAuthSession(ctx context.Context, namespace string) *model.AuthSession {
	var session model.AuthSession
	if !s.readJSON(ctx, namespace, authStorageKey, &session) {
		return nil
	}
	return &session
}

func (s *storageService) SetAuthSession(ctx context.Context, namespace string, session model.AuthSession) {
	s.writeJSON(ctx, namespace, authStorageKey, session)
}

func (s *storageService) ClearAuthSession(ctx context.Context, namespace string) {
	s.remove(ctx, namespace, authStorageKey)
}

// --- 履歴 ---

func (s *storageService) GetHistory(ctx context.Context, namespace string) []model.ExerciseAttempt {
	var history []model.ExerciseAttempt
	if !s.readJSON(ctx, namespace, historyStorageKey, &history) {
		return []model.ExerciseAttempt{}
	}
	return history
}

// SaveAttempt は履歴の先頭に追加し、上限を超えた古いものを捨てます
func (s *storageService) SaveAttempt(ctx context.Context, namespace string, attempt model.ExerciseAttempt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []model.ExerciseAttempt
	if !s.readJSON(ctx, namespace, historyStorageKey, &history) {
		history = nil
	}

	history = append([]model.ExerciseAttempt{attempt}, history...)
	if len(history) > s.historyLimit {
		history = history[:s.historyLimit]
	}
	s.writeJSON(ctx, namespace, historyStorageKey, history)
}
