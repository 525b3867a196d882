package service

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/repository"
)

//go:generate mockery --name LeaderboardService --output ./mocks --outpkg mocks --case=underscore
type LeaderboardService interface {
	// GetLeaderboard はランキングを返します。currentUserID が上位に居なくても結果に含めます。
	GetLeaderboard(ctx context.Context, currentUserID uuid.UUID, limit int) ([]model.LeaderboardEntry, error)
}

type leaderboardService struct {
	db              *gorm.DB
	userRepo        repository.UserRepository
	translationRepo repository.TranslationRepository
	storage         StorageService
	sync            SyncService
	cfg             *config.Config
}

func NewLeaderboardService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	translationRepo repository.TranslationRepository,
	storage StorageService,
	sync SyncService,
	cfg *config.Config,
) LeaderboardService {
	return &leaderboardService{
		db:              db,
		userRepo:        userRepo,
		translationRepo: translationRepo,
		storage:         storage,
		sync:            sync,
		cfg:             cfg,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, currentUserID uuid.UUID, limit int) ([]model.LeaderboardEntry, error) {
	logger := middleware.GetLogger(ctx)

	if limit <= 0 {
		limit = s.cfg.App.LeaderboardLimit
	}
	if limit <= 0 {
		limit = config.DefaultLeaderboardLimit
	}

	entries := s.remoteEntries(ctx)
	sortByPoints(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	if !containsUser(entries, currentUserID.String()) {
		if entry, ok := s.currentUserEntry(ctx, currentUserID); ok {
			// 合成した行を追加した後は切り詰めない (limit+1 件になりうる)
			entries = append(entries, entry)
			sortByPoints(entries)
		}
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}
	logger.Debug("Leaderboard computed", "count", len(entries))
	return entries, nil
}

// remoteEntries は有効なユーザーごとにスコア合計からポイントを計算します。取得失敗時は空です。
func (s *leaderboardService) remoteEntries(ctx context.Context) []model.LeaderboardEntry {
	logger := middleware.GetLogger(ctx)

	users, err := s.userRepo.ListEnabled(ctx, s.db)
	if err != nil {
		logger.Error("Failed to fetch users for leaderboard", "error", err)
		return []model.LeaderboardEntry{}
	}
	scores, err := s.translationRepo.ListScores(ctx, s.db)
	if err != nil {
		logger.Error("Failed to fetch scores for leaderboard", "error", err)
		return []model.LeaderboardEntry{}
	}

	sums := make(map[uuid.UUID]float64, len(users))
	for _, sp := range scores {
		sums[sp.UserID] += sp.Score
	}

	entries := make([]model.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, model.LeaderboardEntry{
			ID:        u.ID.String(),
			Name:      u.DisplayName(),
			AvatarURL: u.AvatarURL,
			Level:     model.ProficiencyFromLevelCode(u.CurrentLevel),
			Points:    int(math.Round(sums[u.ID] * 10)),
		})
	}
	return entries
}

// currentUserEntry はローカルプロフィールとポイントから自分の行を作ります
func (s *leaderboardService) currentUserEntry(ctx context.Context, userID uuid.UUID) (model.LeaderboardEntry, bool) {
	profile := s.storage.GetProfile(ctx, UserNamespace(userID))
	if profile == nil {
		middleware.GetLogger(ctx).Debug("No local profile, current user not added to leaderboard")
		return model.LeaderboardEntry{}, false
	}

	// 保存に失敗した回答はバックエンドに無いので、ローカルの合計の方が大きければそちらを使う
	points, _ := s.sync.UserPoints(ctx, userID, nil)
	if profile.Points > points {
		points = profile.Points
	}
	return model.LeaderboardEntry{
		ID:        userID.String(),
		Name:      profile.Name,
		AvatarURL: profile.Avatar,
		Level:     profile.Proficiency,
		Points:    points,
	}, true
}

func sortByPoints(entries []model.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
}

func containsUser(entries []model.LeaderboardEntry, id string) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}
