package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"you_translator/internal/middleware"
)

// redisKVStore は "namespace:key" 形式のキーで Redis に保存します。
// 有効期限は CacheService 側で管理するので Redis の TTL は使いません。
type redisKVStore struct {
	client *redis.Client
}

func NewRedisKVStore(client *redis.Client) KVStore {
	return &redisKVStore{client: client}
}

// NewRedisClient は接続プールを設定した Redis クライアントを作成し、Ping で疎通を確認します
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              db,
		PoolSize:        50,
		MinIdleConns:    5,
		PoolTimeout:     4 * time.Second,
		ConnMaxIdleTime: 5 * time.Minute,
		MaxRetries:      3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func redisKey(namespace, key string) string {
	return namespace + ":" + key
}

func (s *redisKVStore) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, redisKey(namespace, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		middleware.GetLogger(ctx).Error("Failed to get redis key", "error", err, "namespace", namespace, "key", key)
		return nil, false, fmt.Errorf("redisKVStore.Get: %w", err)
	}
	return data, true, nil
}

func (s *redisKVStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if err := s.client.Set(ctx, redisKey(namespace, key), value, 0).Err(); err != nil {
		middleware.GetLogger(ctx).Error("Failed to set redis key", "error", err, "namespace", namespace, "key", key)
		return fmt.Errorf("redisKVStore.Set: %w", err)
	}
	return nil
}

func (s *redisKVStore) Delete(ctx context.Context, namespace, key string) error {
	if err := s.client.Del(ctx, redisKey(namespace, key)).Err(); err != nil {
		middleware.GetLogger(ctx).Error("Failed to delete redis key", "error", err, "namespace", namespace, "key", key)
		return fmt.Errorf("redisKVStore.Delete: %w", err)
	}
	return nil
}

func (s *redisKVStore) Keys(ctx context.Context, namespace, prefix string) ([]string, error) {
	nsPrefix := namespace + ":"
	pattern := nsPrefix + escapeGlob(prefix) + "*"

	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), nsPrefix))
	}
	if err := iter.Err(); err != nil {
		middleware.GetLogger(ctx).Error("Failed to scan redis keys", "error", err, "namespace", namespace)
		return nil, fmt.Errorf("redisKVStore.Keys: %w", err)
	}
	return keys, nil
}

// escapeGlob は SCAN MATCH のパターン文字をエスケープします
func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}
