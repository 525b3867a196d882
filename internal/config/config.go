// internal/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

// StorageConfig はプロフィール・履歴・キャッシュを保持する KV ストアの設定です
type StorageConfig struct {
	Type      string `mapstructure:"type"` // gorm | redis | memory
	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
	// RedisPassword は環境変数 APP_STORAGE_REDIS_PASSWORD から渡す想定
	RedisPassword string `mapstructure:"redis_password"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
}

type AppConfig struct {
	Name             string `mapstructure:"name"`
	FrontendURL      string `mapstructure:"frontend_url"`
	HistoryLimit     int    `mapstructure:"history_limit"`
	LeaderboardLimit int    `mapstructure:"leaderboard_limit"`
}

type AuthConfig struct {
	Enabled                  bool `mapstructure:"enabled"`
	RequireEmailConfirmation bool `mapstructure:"require_email_confirmation"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // log | smtp | ses
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // static_credentials | iam_role
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type EvaluatorConfig struct {
	Type       string        `mapstructure:"type"` // gemini | offline
	APIKey     string        `mapstructure:"api_key"`
	Model      string        `mapstructure:"model"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
}

// AvatarConfig はアバター画像の保存先設定です
type AvatarConfig struct {
	Type            string `mapstructure:"type"` // s3 | gcs | disk
	MaxBytes        int64  `mapstructure:"max_bytes"`
	Dir             string `mapstructure:"dir"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	// GCS 用。空ならアプリケーションデフォルト認証情報を使う
	CredentialsFile string `mapstructure:"credentials_file"`
	EmulatorHost    string `mapstructure:"emulator_host"`
}

type OAuthProviderConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

type OAuthConfig struct {
	Google OAuthProviderConfig `mapstructure:"google"`
	GitHub OAuthProviderConfig `mapstructure:"github"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Cache     CacheConfig     `mapstructure:"cache"`
	App       AppConfig       `mapstructure:"app"`
	Auth      AuthConfig      `mapstructure:"auth"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Mailer    MailerConfig    `mapstructure:"mailer"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	SES       SESConfig       `mapstructure:"ses"`
	Evaluator EvaluatorConfig `mapstructure:"evaluator"`
	Avatar    AvatarConfig    `mapstructure:"avatar"`
	OAuth     OAuthConfig     `mapstructure:"oauth"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// APP_JWT_SECRET_KEY のように接頭辞 + ネストキーで上書きできる
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("evaluator.api_key", "GEMINI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&Cfg)

	// Auth.Enabled は未設定なら有効にする
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Storage Type: %s", Cfg.Storage.Type)
	log.Printf("Evaluator Type: %s", Cfg.Evaluator.Type)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れます
func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		c.Server.Port = DefaultServerPort
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DefaultDatabaseDriver
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if c.Storage.Type == "" {
		c.Storage.Type = DefaultStorageType
	}
	if c.Cache.DefaultTTL <= 0 {
		c.Cache.DefaultTTL = DefaultCacheTTL
	}
	if c.App.Name == "" {
		c.App.Name = AppName
	}
	if c.App.HistoryLimit <= 0 {
		log.Printf("App history limit not set or invalid, using default '%d'", DefaultHistoryLimit)
		c.App.HistoryLimit = DefaultHistoryLimit
	}
	if c.App.LeaderboardLimit <= 0 {
		c.App.LeaderboardLimit = DefaultLeaderboardLimit
	}
	if c.JWT.AccessTokenTTL <= 0 {
		c.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if c.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}
	if c.Mailer.Type == "" {
		c.Mailer.Type = "log"
	}
	if c.Evaluator.Type == "" {
		c.Evaluator.Type = "offline"
	}
	if c.Evaluator.Model == "" {
		c.Evaluator.Model = DefaultGeminiModel
	}
	if c.Evaluator.BaseURL == "" {
		c.Evaluator.BaseURL = DefaultGeminiBaseURL
	}
	if c.Evaluator.Timeout <= 0 {
		c.Evaluator.Timeout = DefaultEvaluatorTimeout
	}
	if c.Evaluator.MaxRetries < 0 {
		c.Evaluator.MaxRetries = 0
	}
	if c.Avatar.Type == "" {
		c.Avatar.Type = "disk"
	}
	if c.Avatar.MaxBytes <= 0 {
		c.Avatar.MaxBytes = DefaultAvatarMaxBytes
	}
	if c.Avatar.Dir == "" {
		c.Avatar.Dir = "./data/avatars"
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
