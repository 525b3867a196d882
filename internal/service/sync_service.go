package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/repository"
	"you_translator/internal/webutil"
)

// displayCacheTTL はホーム/プロフィール画面の補助データのキャッシュ期間です
const displayCacheTTL = 10 * time.Minute

// SyncService はローカルストア (キャッシュ・プロフィール) とバックエンドを橋渡しします。
// 表示用データはキャッシュを先に返してから必ずネットワークで更新し、
// 書き込みはバックエンドを正とし、成功時に依存するキャッシュを無効化します。
//
//go:generate mockery --name SyncService --output ./mocks --outpkg mocks --case=underscore
type SyncService interface {
	Bootstrap(ctx context.Context, userID uuid.UUID) (*model.BootstrapResult, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, req *model.OnboardingRequest) (*model.BootstrapResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.UserProfile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (string, error)
	DeleteAvatar(ctx context.Context, userID uuid.UUID) error

	// 読み取り系。onUpdate にはキャッシュ値、続いてネットワーク値が渡されます (nil 可)。
	UserPoints(ctx context.Context, userID uuid.UUID, onUpdate func(int, model.DataSource)) (int, model.DataSource)
	UserSummary(ctx context.Context, userID uuid.UUID, onUpdate func(model.TranslationSummary, model.DataSource)) (model.TranslationSummary, model.DataSource)
	UserAvatar(ctx context.Context, userID uuid.UUID, onUpdate func(string, model.DataSource)) (string, model.DataSource)
	LoadHome(ctx context.Context, userID uuid.UUID) (*model.HomeSnapshot, error)

	SaveTranslation(ctx context.Context, userID uuid.UUID, params *model.SaveTranslationParams) (*model.Translation, error)
	DeleteTranslation(ctx context.Context, userID, translationID uuid.UUID) error
	ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Translation, error)
	GetTranslation(ctx context.Context, userID, translationID uuid.UUID) (*model.Translation, error)
	Stats(ctx context.Context, userID uuid.UUID) (*model.TranslationStats, error)
	Logout(ctx context.Context, userID uuid.UUID)
}

type syncService struct {
	db              *gorm.DB
	userRepo        repository.UserRepository
	translationRepo repository.TranslationRepository
	cache           CacheService
	storage         StorageService
	avatars         AvatarStore
	tracker         *ScreenTracker
	cfg             *config.Config
	now             func() time.Time
}

func NewSyncService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	translationRepo repository.TranslationRepository,
	cache CacheService,
	storage StorageService,
	avatars AvatarStore,
	tracker *ScreenTracker,
	cfg *config.Config,
) SyncService {
	return &syncService{
		db:              db,
		userRepo:        userRepo,
		translationRepo: translationRepo,
		cache:           cache,
		storage:         storage,
		avatars:         avatars,
		tracker:         tracker,
		cfg:             cfg,
		now:             time.Now,
	}
}

// --- オンボーディング・プロフィール ---

func (s *syncService) findUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "Usuário não encontrado.", "", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Failed to fetch user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao buscar os dados do usuário.", "", err)
	}
	return user, nil
}

// initProfileFromUser はバックエンドのユーザーレコードからローカルプロフィールを作ります
func (s *syncService) initProfileFromUser(ctx context.Context, user *model.User) *model.UserProfile {
	ns := UserNamespace(user.ID)
	profile := s.storage.InitializeDefault(ctx, ns,
		user.DisplayName(),
		user.Email,
		model.LanguageFromCode(user.MotherLanguage),
		model.ProficiencyFromLevelCode(user.CurrentLevel),
	)
	if user.AvatarURL != "" {
		profile.Avatar = user.AvatarURL
		s.storage.SaveProfile(ctx, ns, profile)
	}
	return &profile
}

// ensureProfile はローカルプロフィールを返し、無ければバックエンドから初期化します
func (s *syncService) ensureProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	if profile := s.storage.GetProfile(ctx, UserNamespace(userID)); profile != nil {
		return profile, nil
	}
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.NeedsOnboarding() {
		return nil, model.NewAppError("ONBOARDING_REQUIRED", "Complete seu cadastro antes de continuar.", "", model.ErrForbidden)
	}
	return s.initProfileFromUser(ctx, user), nil
}

// Bootstrap はサインイン直後に呼ばれ、オンボーディングが必要か判定します
func (s *syncService) Bootstrap(ctx context.Context, userID uuid.UUID) (*model.BootstrapResult, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.NeedsOnboarding() {
		logger.Info("User needs onboarding")
		return &model.BootstrapResult{NeedsOnboarding: true, User: user}, nil
	}

	profile := s.storage.GetProfile(ctx, UserNamespace(userID))
	if profile == nil {
		profile = s.initProfileFromUser(ctx, user)
	}
	return &model.BootstrapResult{NeedsOnboarding: false, User: user, Profile: profile}, nil
}

func (s *syncService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, req *model.OnboardingRequest) (*model.BootstrapResult, error) {
	logger := middleware.GetLogger(ctx)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}

	update := model.UserUpdate{
		FirstName:      &req.FirstName,
		MotherLanguage: &req.MotherLanguage,
		CurrentLevel:   &req.CurrentLevel,
	}
	if err := s.userRepo.Update(ctx, s.db, userID, update); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "Usuário não encontrado.", "", model.ErrNotFound)
		}
		logger.Error("Failed to save onboarding", "error", err)
		return nil, model.NewAppError("ONBOARDING_FAILED", "Não foi possível salvar suas informações.", "", err)
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// オンボーディング完了時はプロフィールを作り直す
	profile := s.initProfileFromUser(ctx, user)
	s.cache.Remove(ctx, UserNamespace(userID), avatarCacheKey(userID.String()))

	logger.Info("Onboarding completed", "language", profile.NativeLanguage, "proficiency", profile.Proficiency)
	return &model.BootstrapResult{NeedsOnboarding: false, User: user, Profile: profile}, nil
}

func (s *syncService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	return s.ensureProfile(ctx, userID)
}

func (s *syncService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	logger := middleware.GetLogger(ctx)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	if _, err := s.ensureProfile(ctx, userID); err != nil {
		return nil, err
	}

	remote := model.UserUpdate{
		FirstName:      req.FirstName,
		MotherLanguage: req.MotherLanguage,
		CurrentLevel:   req.CurrentLevel,
	}
	if err := remote.Validate(); err != nil {
		return nil, err
	}
	if !remote.IsEmpty() {
		if err := s.userRepo.Update(ctx, s.db, userID, remote); err != nil {
			logger.Error("Failed to update user record", "error", err)
			return nil, model.NewAppError("PROFILE_UPDATE_FAILED", "Não foi possível atualizar o perfil.", "", err)
		}
	}

	local := model.ProfileUpdate{Name: req.FirstName, Theme: req.Theme}
	if req.MotherLanguage != nil {
		lang := model.LanguageFromCode(*req.MotherLanguage)
		local.NativeLanguage = &lang
	}
	if req.CurrentLevel != nil {
		prof := model.ProficiencyFromLevelCode(*req.CurrentLevel)
		local.Proficiency = &prof
	}
	profile, err := s.storage.ApplyProfileUpdate(ctx, UserNamespace(userID), local)
	if err != nil {
		return nil, err
	}

	s.cache.Remove(ctx, UserNamespace(userID), avatarCacheKey(userID.String()))
	logger.Info("Profile updated")
	return profile, nil
}

func (s *syncService) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (string, error) {
	logger := middleware.GetLogger(ctx)

	maxBytes := s.cfg.Avatar.MaxBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultAvatarMaxBytes
	}
	if err := ValidateAvatar(contentType, size, maxBytes); err != nil {
		return "", err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return "", err
	}

	name := AvatarObjectName(userID, contentType, s.now())
	publicURL, err := s.avatars.Put(ctx, name, contentType, body, size)
	if err != nil {
		logger.Error("Failed to upload avatar", "error", err)
		return "", model.NewAppError("AVATAR_UPLOAD_FAILED", "Não foi possível enviar a imagem.", "avatar", errors.Join(model.ErrUnavailable, err))
	}

	if err := s.userRepo.Update(ctx, s.db, userID, model.UserUpdate{AvatarURL: &publicURL}); err != nil {
		logger.Error("Failed to save avatar url", "error", err)
		if delErr := s.avatars.Delete(ctx, publicURL); delErr != nil {
			logger.Warn("Failed to clean up uploaded avatar", "error", delErr)
		}
		return "", model.NewAppError("AVATAR_UPLOAD_FAILED", "Não foi possível salvar a imagem.", "avatar", err)
	}

	if user.AvatarURL != "" && user.AvatarURL != publicURL {
		if err := s.avatars.Delete(ctx, user.AvatarURL); err != nil {
			logger.Warn("Failed to delete previous avatar", "error", err, "url", user.AvatarURL)
		}
	}

	ns := UserNamespace(userID)
	if _, err := s.storage.ApplyProfileUpdate(ctx, ns, model.ProfileUpdate{Avatar: &publicURL}); err != nil {
		logger.Debug("Local profile not updated with avatar", "error", err)
	}
	// 新しいURLで上書きする
	s.cache.Set(ctx, ns, avatarCacheKey(userID.String()), publicURL, displayCacheTTL)

	logger.Info("Avatar uploaded", "url", publicURL)
	return publicURL, nil
}

func (s *syncService) DeleteAvatar(ctx context.Context, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	ns := UserNamespace(userID)
	if user.AvatarURL == "" {
		s.cache.Remove(ctx, ns, avatarCacheKey(userID.String()))
		return nil
	}

	if err := s.avatars.Delete(ctx, user.AvatarURL); err != nil {
		logger.Error("Failed to delete avatar object", "error", err)
		return model.NewAppError("AVATAR_DELETE_FAILED", "Não foi possível remover a imagem.", "avatar", errors.Join(model.ErrUnavailable, err))
	}
	empty := ""
	if err := s.userRepo.Update(ctx, s.db, userID, model.UserUpdate{AvatarURL: &empty}); err != nil {
		logger.Error("Failed to clear avatar url", "error", err)
		return model.NewAppError("AVATAR_DELETE_FAILED", "Não foi possível remover a imagem.", "avatar", err)
	}

	if _, err := s.storage.ApplyProfileUpdate(ctx, ns, model.ProfileUpdate{Avatar: &empty}); err != nil {
		logger.Debug("Local profile not updated after avatar removal", "error", err)
	}
	s.cache.Remove(ctx, ns, avatarCacheKey(userID.String()))

	logger.Info("Avatar deleted")
	return nil
}

// --- 読み取り系 (キャッシュ優先 + 常にネットワーク更新) ---

// cacheFirst はキャッシュ値を先に通知し、ネットワーク値で上書きします。
// ネットワークに失敗した場合はキャッシュ値 (無ければゼロ値) のままです。
func cacheFirst[T any](
	ctx context.Context,
	cache CacheService,
	namespace, key string,
	fetch func(context.Context) (T, error),
	onUpdate func(T, model.DataSource),
) (T, model.DataSource) {
	logger := middleware.GetLogger(ctx).With("cache_key", key)

	var value T
	source := model.SourceNone
	if cache.Get(ctx, namespace, key, &value) {
		source = model.SourceCache
		if onUpdate != nil {
			onUpdate(value, source)
		}
	}

	fresh, err := fetch(ctx)
	if err != nil {
		logger.Warn("Network refresh failed, keeping cached value", "error", err, "source", source)
		return value, source
	}

	cache.Set(ctx, namespace, key, fresh, displayCacheTTL)
	if onUpdate != nil {
		onUpdate(fresh, model.SourceNetwork)
	}
	return fresh, model.SourceNetwork
}

func (s *syncService) UserPoints(ctx context.Context, userID uuid.UUID, onUpdate func(int, model.DataSource)) (int, model.DataSource) {
	return cacheFirst(ctx, s.cache, UserNamespace(userID), pointsCacheKey(userID.String()),
		func(ctx context.Context) (int, error) {
			counters, err := s.translationRepo.CountersByUser(ctx, s.db, userID)
			if err != nil {
				return 0, err
			}
			return counters.XPScore, nil
		}, onUpdate)
}

func (s *syncService) UserSummary(ctx context.Context, userID uuid.UUID, onUpdate func(model.TranslationSummary, model.DataSource)) (model.TranslationSummary, model.DataSource) {
	return cacheFirst(ctx, s.cache, UserNamespace(userID), statsCacheKey(userID.String()),
		func(ctx context.Context) (model.TranslationSummary, error) {
			stats, err := s.translationRepo.StatsByUser(ctx, s.db, userID)
			if err != nil {
				return model.TranslationSummary{}, err
			}
			return model.TranslationSummary{Total: stats.Total, AverageScore: stats.AverageScore}, nil
		}, onUpdate)
}

func (s *syncService) UserAvatar(ctx context.Context, userID uuid.UUID, onUpdate func(string, model.DataSource)) (string, model.DataSource) {
	return cacheFirst(ctx, s.cache, UserNamespace(userID), avatarCacheKey(userID.String()),
		func(ctx context.Context) (string, error) {
			user, err := s.userRepo.FindByID(ctx, s.db, userID)
			if err != nil {
				return "", err
			}
			return user.AvatarURL, nil
		}, onUpdate)
}

// LoadHome はホーム画面のデータを並行に取得します。
// 同じユーザーの新しい LoadHome が始まった後に届いた更新は破棄されます。
func (s *syncService) LoadHome(ctx context.Context, userID uuid.UUID) (*model.HomeSnapshot, error) {
	logger := middleware.GetLogger(ctx)

	screen := "home:" + userID.String()
	generation := s.tracker.Begin(screen)

	snapshot := &model.HomeSnapshot{
		PointsSource:  model.SourceNone,
		SummarySource: model.SourceNone,
		AvatarSource:  model.SourceNone,
	}
	var mu sync.Mutex
	apply := func(update func()) {
		mu.Lock()
		defer mu.Unlock()
		if !s.tracker.IsCurrent(screen, generation) {
			snapshot.Superseded = true
			logger.Debug("Discarding stale home update", "generation", generation)
			return
		}
		update()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.UserPoints(gctx, userID, func(points int, src model.DataSource) {
			apply(func() { snapshot.Points, snapshot.PointsSource = points, src })
		})
		return nil
	})
	g.Go(func() error {
		s.UserSummary(gctx, userID, func(summary model.TranslationSummary, src model.DataSource) {
			apply(func() { snapshot.Summary, snapshot.SummarySource = summary, src })
		})
		return nil
	})
	g.Go(func() error {
		s.UserAvatar(gctx, userID, func(url string, src model.DataSource) {
			apply(func() { snapshot.AvatarURL, snapshot.AvatarSource = url, src })
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !s.tracker.IsCurrent(screen, generation) {
		snapshot.Superseded = true
	}
	snapshot.Profile = s.storage.GetProfile(ctx, UserNamespace(userID))
	return snapshot, nil
}

// --- 書き込み系 (バックエンドが正) ---

// invalidateDerived は翻訳レコードから計算される値のキャッシュを消します
func (s *syncService) invalidateDerived(ctx context.Context, userID uuid.UUID) {
	ns := UserNamespace(userID)
	s.cache.Remove(ctx, ns, pointsCacheKey(userID.String()))
	s.cache.Remove(ctx, ns, statsCacheKey(userID.String()))
}

// recomputeCounters は users の集計カラムを translations から再計算します
func (s *syncService) recomputeCounters(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	counters, err := s.translationRepo.CountersByUser(ctx, tx, userID)
	if err != nil {
		return err
	}
	return s.userRepo.UpdateCounters(ctx, tx, userID, counters)
}

func (s *syncService) SaveTranslation(ctx context.Context, userID uuid.UUID, params *model.SaveTranslationParams) (*model.Translation, error) {
	logger := middleware.GetLogger(ctx)

	if err := webutil.ValidateStruct(params); err != nil {
		return nil, err
	}

	mode := params.PracticeMode
	if mode == "" {
		mode = model.PracticeModeAuto
	}
	translation := &model.Translation{
		ID:                 uuid.New(),
		UserID:             userID,
		OriginalPhrase:     params.OriginalPhrase,
		UserTranslation:    params.UserTranslation,
		CorrectTranslation: params.CorrectTranslation,
		Score:              model.NormalizeScore(params.Score),
		Explanation:        params.Explanation,
		Tips:               model.StringList(params.Tips),
		PracticeMode:       mode,
		SourceLanguage:     params.SourceLanguage,
		DifficultyLevel:    params.DifficultyLevel,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.translationRepo.Create(ctx, tx, translation); err != nil {
			return err
		}
		return s.recomputeCounters(ctx, tx, userID)
	})
	if err != nil {
		logger.Error("Failed to save translation", "error", err)
		return nil, model.NewAppError("SAVE_TRANSLATION_FAILED", "Não foi possível salvar a tradução.", "", err)
	}

	s.invalidateDerived(ctx, userID)
	logger.Info("Translation saved", "translation_id", translation.ID, "score", translation.Score)
	return translation, nil
}

// findOwnedTranslation は他人のレコードを存在しないものとして扱います
func (s *syncService) findOwnedTranslation(ctx context.Context, db *gorm.DB, userID, translationID uuid.UUID) (*model.Translation, error) {
	translation, err := s.translationRepo.FindByID(ctx, db, translationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TRANSLATION_NOT_FOUND", "Tradução não encontrada.", "", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Failed to fetch translation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao buscar a tradução.", "", err)
	}
	if translation.UserID != userID {
		return nil, model.NewAppError("TRANSLATION_NOT_FOUND", "Tradução não encontrada.", "", model.ErrNotFound)
	}
	return translation, nil
}

func (s *syncService) DeleteTranslation(ctx context.Context, userID, translationID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("translation_id", translationID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findOwnedTranslation(ctx, tx, userID, translationID); err != nil {
			return err
		}
		if err := s.translationRepo.Delete(ctx, tx, translationID); err != nil {
			return err
		}
		return s.recomputeCounters(ctx, tx, userID)
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		logger.Error("Failed to delete translation", "error", err)
		return model.NewAppError("DELETE_TRANSLATION_FAILED", "Não foi possível excluir a tradução.", "", err)
	}

	s.invalidateDerived(ctx, userID)
	logger.Info("Translation deleted")
	return nil
}

func (s *syncService) ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Translation, error) {
	maxLimit := s.cfg.App.HistoryLimit
	if maxLimit <= 0 {
		maxLimit = config.DefaultHistoryLimit
	}
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	translations, err := s.translationRepo.ListByUser(ctx, s.db, userID, limit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list translations", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao carregar o histórico.", "", err)
	}
	return translations, nil
}

func (s *syncService) GetTranslation(ctx context.Context, userID, translationID uuid.UUID) (*model.Translation, error) {
	return s.findOwnedTranslation(ctx, s.db, userID, translationID)
}

func (s *syncService) Stats(ctx context.Context, userID uuid.UUID) (*model.TranslationStats, error) {
	stats, err := s.translationRepo.StatsByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to aggregate translation stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao carregar as estatísticas.", "", err)
	}
	return stats, nil
}

// Logout はローカルのセッション・プロフィール・アバターキャッシュを消します
func (s *syncService) Logout(ctx context.Context, userID uuid.UUID) {
	ns := UserNamespace(userID)
	s.storage.ClearAuthSession(ctx, ns)
	s.storage.RemoveProfile(ctx, ns)
	s.cache.Remove(ctx, ns, avatarCacheKey(userID.String()))
	middleware.GetLogger(ctx).Info("Local state cleared on logout")
}

// LogoutListener はサインアウト時にローカルの状態を消すリスナーです
func LogoutListener(sync SyncService) model.SessionListener {
	return func(ctx context.Context, event model.SessionEvent, userID uuid.UUID, _ *model.AuthSession) {
		if event == model.SessionSignedOut {
			sync.Logout(ctx, userID)
		}
	}
}
