package model

// DataSource は表示値の出どころです
type DataSource string

const (
	SourceNone    DataSource = "none"
	SourceCache   DataSource = "cache"
	SourceNetwork DataSource = "network"
)

// HomeSnapshot はホーム画面に表示する補助データです。
// 各値はキャッシュ → ネットワークの順で上書きされます。
type HomeSnapshot struct {
	Points        int                `json:"points"`
	PointsSource  DataSource         `json:"points_source"`
	Summary       TranslationSummary `json:"summary"`
	SummarySource DataSource         `json:"summary_source"`
	AvatarURL     string             `json:"avatar_url,omitempty"`
	AvatarSource  DataSource         `json:"avatar_source"`
	Profile       *UserProfile       `json:"profile,omitempty"`
	// Superseded は同じ画面の新しいリクエストが始まり、途中の更新を破棄したことを示します
	Superseded bool `json:"superseded"`
}
