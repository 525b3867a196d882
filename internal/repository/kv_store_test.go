package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"you_translator/internal/repository"
)

// 実装ごとに同じ振る舞いを確認する (redis は handlers の統合テストで使う)
func kvStores(t *testing.T) map[string]repository.KVStore {
	return map[string]repository.KVStore{
		"gorm":   repository.NewGormKVStore(newTestDB(t)),
		"memory": repository.NewMemoryKVStore(),
	}
}

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			_, found, err := store.Get(ctx, "user:1", "profile")
			require.NoError(t, err)
			assert.False(t, found, "正常系: 未設定のキーは found=false")

			require.NoError(t, store.Set(ctx, "user:1", "profile", []byte(`{"points":10}`)))
			require.NoError(t, store.Set(ctx, "user:1", "profile", []byte(`{"points":20}`)))

			value, found, err := store.Get(ctx, "user:1", "profile")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `{"points":20}`, string(value), "正常系: 上書きされる")

			// 名前空間が違えば別のキー
			_, found, err = store.Get(ctx, "user:2", "profile")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.Delete(ctx, "user:1", "profile"))
			_, found, err = store.Get(ctx, "user:1", "profile")
			require.NoError(t, err)
			assert.False(t, found)

			assert.NoError(t, store.Delete(ctx, "user:1", "missing"), "正常系: 存在しないキーの削除は成功")
		})
	}
}

func TestKVStore_Keys(t *testing.T) {
	ctx := context.Background()
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"cache_points_1", "cache_stats_1", "cacheXpoints", "profile"} {
				require.NoError(t, store.Set(ctx, "user:1", key, []byte("v")))
			}
			require.NoError(t, store.Set(ctx, "user:2", "cache_points_2", []byte("v")))

			keys, err := store.Keys(ctx, "user:1", "cache_")
			require.NoError(t, err)
			assert.Equal(t, []string{"cache_points_1", "cache_stats_1"}, keys, "正常系: _ はワイルドカードとして扱わない")

			all, err := store.Keys(ctx, "user:1", "")
			require.NoError(t, err)
			assert.Len(t, all, 4)

			none, err := store.Keys(ctx, "user:3", "")
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestMemoryKVStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKVStore()

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "ns", "k", value))
	value[0] = 'x'

	got, _, err := store.Get(ctx, "ns", "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
