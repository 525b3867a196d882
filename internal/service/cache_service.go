package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/repository"
)

// cacheKeyPrefix はキャッシュエントリのキー接頭辞です。ClearAll はこの接頭辞のキーだけを削除します。
const cacheKeyPrefix = "cache_"

// キャッシュの論理キー
func avatarCacheKey(userID string) string { return "user_avatar_" + userID }
func pointsCacheKey(userID string) string { return "user_points_" + userID }
func statsCacheKey(userID string) string  { return "user_stats_" + userID }

type CacheService interface {
	// Set は data を ttl 付きで保存します。ttl <= 0 ならデフォルトTTLを使います。
	Set(ctx context.Context, namespace, key string, data interface{}, ttl time.Duration)
	// Get は有効なエントリを dst にデコードし true を返します。期限切れのエントリは削除されます。
	Get(ctx context.Context, namespace, key string, dst interface{}) bool
	Remove(ctx context.Context, namespace, key string)
	Has(ctx context.Context, namespace, key string) bool
	ClearAll(ctx context.Context, namespace string)
}

// cacheEntry は KVStore に保存する形式です
type cacheEntry struct {
	Data     json.RawMessage `json:"data"`
	StoredAt time.Time       `json:"stored_at"`
	TTL      time.Duration   `json:"ttl"`
}

func (e cacheEntry) expired(now time.Time) bool {
	return now.Sub(e.StoredAt) > e.TTL
}

type cacheService struct {
	store      repository.KVStore
	defaultTTL time.Duration
	now        func() time.Time
}

// NewCacheService は KVStore 上に期限付きキャッシュを構築します
func NewCacheService(store repository.KVStore, cfg *config.Config) CacheService {
	ttl := cfg.Cache.DefaultTTL
	if ttl <= 0 {
		ttl = config.DefaultCacheTTL
	}
	return &cacheService{
		store:      store,
		defaultTTL: ttl,
		now:        time.Now,
	}
}

func (s *cacheService) Set(ctx context.Context, namespace, key string, data interface{}, ttl time.Duration) {
	logger := middleware.GetLogger(ctx).With("cache_key", key)
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to encode cache data", "error", err)
		return
	}
	entry, err := json.Marshal(cacheEntry{Data: raw, StoredAt: s.now(), TTL: ttl})
	if err != nil {
		logger.Error("Failed to encode cache entry", "error", err)
		return
	}
	if err := s.store.Set(ctx, namespace, cacheKeyPrefix+key, entry); err != nil {
		logger.Error("Failed to write cache entry", "error", err)
		return
	}
	logger.Debug("Cache entry stored", "ttl", ttl.String())
}

func (s *cacheService) Get(ctx context.Context, namespace, key string, dst interface{}) bool {
	logger := middleware.GetLogger(ctx).With("cache_key", key)

	entry, ok := s.load(ctx, namespace, key)
	if !ok {
		return false
	}
	if dst == nil {
		return true
	}
	if err := json.Unmarshal(entry.Data, dst); err != nil {
		logger.Error("Failed to decode cached data", "error", err)
		return false
	}
	return true
}

func (s *cacheService) Has(ctx context.Context, namespace, key string) bool {
	_, ok := s.load(ctx, namespace, key)
	return ok
}

// load は有効なエントリを返します。期限切れなら削除して false を返します。
func (s *cacheService) load(ctx context.Context, namespace, key string) (cacheEntry, bool) {
	logger := middleware.GetLogger(ctx).With("cache_key", key)

	raw, found, err := s.store.Get(ctx, namespace, cacheKeyPrefix+key)
	if err != nil {
		logger.Error("Failed to read cache entry", "error", err)
		return cacheEntry{}, false
	}
	if !found {
		return cacheEntry{}, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		logger.Error("Corrupt cache entry", "error", err)
		return cacheEntry{}, false
	}
	if entry.expired(s.now()) {
		logger.Debug("Cache entry expired", "stored_at", entry.StoredAt)
		s.Remove(ctx, namespace, key)
		return cacheEntry{}, false
	}
	return entry, true
}

func (s *cacheService) Remove(ctx context.Context, namespace, key string) {
	if err := s.store.Delete(ctx, namespace, cacheKeyPrefix+key); err != nil {
		middleware.GetLogger(ctx).Error("Failed to remove cache entry", "cache_key", key, "error", err)
	}
}

func (s *cacheService) ClearAll(ctx context.Context, namespace string) {
	logger := middleware.GetLogger(ctx)

	keys, err := s.store.Keys(ctx, namespace, cacheKeyPrefix)
	if err != nil {
		logger.Error("Failed to list cache keys", "error", err)
		return
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, cacheKeyPrefix) {
			continue
		}
		if err := s.store.Delete(ctx, namespace, k); err != nil {
			logger.Error("Failed to remove cache entry", "cache_key", k, "error", err)
		}
	}
	logger.Debug("Cache cleared", "count", len(keys))
}

// UserNamespace はユーザーごとのローカルストアの名前空間です
func UserNamespace(userID uuid.UUID) string {
	return "user:" + userID.String()
}
