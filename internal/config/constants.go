// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "YouTranslator"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultDatabaseDriver   = "postgres"
	DefaultStorageType      = "gorm"
	DefaultLogLevel         = "info"
	DefaultCacheTTL         = 10 * time.Minute
	DefaultHistoryLimit     = 50
	DefaultLeaderboardLimit = 50
	DefaultAccessTokenTTL   = 24 * time.Hour
	DefaultAvatarMaxBytes   = 2 * 1024 * 1024
	DefaultEvaluatorTimeout = 30 * time.Second
)

// Gemini API
const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-2.5-flash"
)
