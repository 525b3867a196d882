package model

// LeaderboardEntry はランキングの1行です。リクエストごとに計算し、保存しません。
type LeaderboardEntry struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	AvatarURL string      `json:"avatar_url,omitempty"`
	Level     Proficiency `json:"level"`
	Points    int         `json:"points"`
	Rank      int         `json:"rank"`
}
