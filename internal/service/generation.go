package service

import "sync"

// ScreenTracker は画面ごとのリクエスト世代を管理します。
// Begin で世代を進め、古い世代の非同期結果は IsCurrent で弾きます。
type ScreenTracker struct {
	mu          sync.Mutex
	generations map[string]uint64
}

func NewScreenTracker() *ScreenTracker {
	return &ScreenTracker{generations: make(map[string]uint64)}
}

// Begin は screen の新しい世代を返します
func (t *ScreenTracker) Begin(screen string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generations[screen]++
	return t.generations[screen]
}

func (t *ScreenTracker) IsCurrent(screen string, generation uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generations[screen] == generation
}
