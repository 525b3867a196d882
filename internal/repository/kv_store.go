package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"you_translator/internal/middleware"
	"you_translator/internal/model"
)

// KVStore はアカウントごとの名前空間を持つ永続 KV ストアです。
// キャッシュ・プロフィール・履歴はすべてこの上に載ります。
type KVStore interface {
	// Get はキーが存在しない場合 found=false を返します (エラーではありません)
	Get(ctx context.Context, namespace, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, namespace, key string, value []byte) error
	// Delete は存在しないキーでも成功します
	Delete(ctx context.Context, namespace, key string) error
	// Keys は prefix で始まるキーを返します (prefix が空なら全キー)
	Keys(ctx context.Context, namespace, prefix string) ([]string, error)
}

type gormKVStore struct {
	db *gorm.DB
}

// NewGormKVStore は kv_entries テーブルを使う KVStore を返します
func NewGormKVStore(db *gorm.DB) KVStore {
	return &gormKVStore{db: db}
}

func (s *gormKVStore) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.KVEntry
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND key = ?", namespace, key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		logger.Error("Failed to get kv entry", "error", err, "namespace", namespace, "key", key)
		return nil, false, fmt.Errorf("gormKVStore.Get: %w", err)
	}
	return entry.Value, true, nil
}

func (s *gormKVStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	logger := middleware.GetLogger(ctx)
	entry := model.KVEntry{Namespace: namespace, Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		logger.Error("Failed to set kv entry", "error", err, "namespace", namespace, "key", key)
		return fmt.Errorf("gormKVStore.Set: %w", err)
	}
	return nil
}

func (s *gormKVStore) Delete(ctx context.Context, namespace, key string) error {
	logger := middleware.GetLogger(ctx)
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND key = ?", namespace, key).
		Delete(&model.KVEntry{}).Error
	if err != nil {
		logger.Error("Failed to delete kv entry", "error", err, "namespace", namespace, "key", key)
		return fmt.Errorf("gormKVStore.Delete: %w", err)
	}
	return nil
}

func (s *gormKVStore) Keys(ctx context.Context, namespace, prefix string) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var keys []string
	q := s.db.WithContext(ctx).Model(&model.KVEntry{}).Where("namespace = ?", namespace)
	if prefix != "" {
		q = q.Where("key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%")
	}
	if err := q.Order("key").Pluck("key", &keys).Error; err != nil {
		logger.Error("Failed to list kv keys", "error", err, "namespace", namespace)
		return nil, fmt.Errorf("gormKVStore.Keys: %w", err)
	}
	return keys, nil
}

// escapeLike は LIKE のワイルドカードをエスケープします (cache_ の "_" など)
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
