// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"you_translator/internal/config"
	"you_translator/internal/handlers"
	"you_translator/internal/middleware"
	"you_translator/internal/repository"
	"you_translator/internal/service"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env は任意 (本番では環境変数を直接渡す)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "../configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.Cfg.App.Name))

	ctx := context.Background()
	cfg := &config.Cfg

	// 1. DB (バックエンドのレコード)
	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 2. ローカルストア (プロフィール・履歴・キャッシュ)
	kv, closeKV, err := newKVStore(&cfg.Storage, db)
	if err != nil {
		slog.Error("Error initializing local store", slog.Any("error", err), slog.String("type", cfg.Storage.Type))
		os.Exit(1)
	}
	defer closeKV()

	avatars, err := service.NewAvatarStore(ctx, cfg)
	if err != nil {
		slog.Error("Error initializing avatar store", slog.Any("error", err), slog.String("type", cfg.Avatar.Type))
		os.Exit(1)
	}

	// 3. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	translationRepo := repository.NewGormTranslationRepository()
	tokenRepo := repository.NewGormTokenRepository()
	identityRepo := repository.NewGormIdentityRepository()

	storageService := service.NewStorageService(kv, cfg)
	cacheService := service.NewCacheService(kv, cfg)
	syncService := service.NewSyncService(db, userRepo, translationRepo, cacheService, storageService, avatars, service.NewScreenTracker(), cfg)
	leaderboardService := service.NewLeaderboardService(db, userRepo, translationRepo, storageService, syncService, cfg)
	practiceService := service.NewPracticeService(syncService, storageService, service.NewEvaluator(cfg))
	authService := service.NewAuthService(db, userRepo, tokenRepo, identityRepo, storageService,
		service.NewMailer(ctx, cfg), service.NewOAuthProviders(&cfg.OAuth), cfg)

	// セッションの変化をローカルストアへ反映する
	authService.Subscribe(service.SessionMirror(storageService))
	authService.Subscribe(service.LogoutListener(syncService))

	// 4. Setup Router
	var authMiddleware func(http.Handler) http.Handler
	if cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		authMiddleware = middleware.JWTAuthMiddleware(&cfg.JWT)
	} else {
		slog.Warn("Authentication is disabled, using X-User-ID header (development only)")
		authMiddleware = middleware.DevUserContextMiddleware
	}

	routerCfg := handlers.RouterConfig{
		Logger: logger,
		CORS: cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			ExposedHeaders:   cfg.CORS.ExposedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
			Debug:            false,
		},
		AuthMiddleware: authMiddleware,
		Health:         healthHandler(db),
		RequestTimeout: 60 * time.Second,
	}
	if cfg.Avatar.Type == "disk" {
		routerCfg.StaticDir = cfg.Avatar.Dir
	}

	r := handlers.NewRouter(handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Profile:  handlers.NewProfileHandler(syncService, &cfg.Avatar),
		Practice: handlers.NewPracticeHandler(practiceService),
		History:  handlers.NewHistoryHandler(syncService),
		Home:     handlers.NewHomeHandler(syncService, leaderboardService),
	}, routerCfg)

	// 5. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // AI 評価の待ち時間を含む
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のハンドラでロガーを作ります
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

// newKVStore は storage.type に応じた KV ストアと、終了時の後始末を返します
func newKVStore(cfg *config.StorageConfig, db *gorm.DB) (repository.KVStore, func(), error) {
	switch cfg.Type {
	case "redis":
		client, err := repository.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisKVStore(client), func() {
			if err := client.Close(); err != nil {
				slog.Error("Error closing redis connection", slog.Any("error", err))
			}
		}, nil
	case "memory":
		slog.Warn("Using in-memory local store, data is lost on restart")
		return repository.NewMemoryKVStore(), func() {}, nil
	default:
		return repository.NewGormKVStore(db), func() {}, nil
	}
}

func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
