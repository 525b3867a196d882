// cmd/db_seed/main.go
// 開発用のデモユーザーと翻訳履歴を投入します。
//
//	go run ./cmd/db_seed -password secret123
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"you_translator/internal/config"
	"you_translator/internal/model"
	"you_translator/internal/repository"
	"you_translator/internal/service"
)

type seedUser struct {
	name     string
	email    string
	language string
	level    string
	scores   []float64
}

var seedUsers = []seedUser{
	{name: "Ana", email: "ana@example.com", language: model.LanguageCodeSpanish, level: model.LevelCodeBeginner, scores: []float64{6.5, 7, 8.2}},
	{name: "Bruno", email: "bruno@example.com", language: model.LanguageCodePortuguese, level: model.LevelCodeIntermediate, scores: []float64{9, 8.5, 9.5, 7}},
	{name: "Camille", email: "camille@example.com", language: model.LanguageCodeFrench, level: model.LevelCodeAdvanced, scores: []float64{10, 9.8}},
}

var seedPhrases = map[string][2]string{
	model.LanguageCodeSpanish:    {"¿Dónde está la biblioteca?", "Where is the library?"},
	model.LanguageCodePortuguese: {"Eu gosto de viajar no verão.", "I like to travel in the summer."},
	model.LanguageCodeFrench:     {"Il fait très beau aujourd'hui.", "The weather is very nice today."},
}

func main() {
	configDir := flag.String("config", "configs", "設定ファイルのディレクトリ")
	password := flag.String("password", "secret123", "デモユーザーのパスワード")
	flag.Parse()

	_ = godotenv.Load()
	if err := config.LoadConfig(*configDir); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := &config.Cfg

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 集計カラムの再計算は SyncService に任せる (ローカルストアは使い捨て)
	kv := repository.NewMemoryKVStore()
	userRepo := repository.NewGormUserRepository()
	syncService := service.NewSyncService(db, userRepo, repository.NewGormTranslationRepository(),
		service.NewCacheService(kv, cfg), service.NewStorageService(kv, cfg), nil, service.NewScreenTracker(), cfg)

	ctx := context.Background()
	for _, su := range seedUsers {
		user := &model.User{
			ID:             uuid.New(),
			Email:          su.email,
			Name:           su.name,
			FirstName:      su.name,
			MotherLanguage: su.language,
			CurrentLevel:   su.level,
			Enabled:        true,
			EmailConfirmed: true,
			PasswordHash:   string(hash),
		}
		if err := userRepo.Create(ctx, db, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				log.Printf("User %s already exists, skipping", su.email)
				continue
			}
			log.Fatalf("Failed to create user %s: %v", su.email, err)
		}

		phrase := seedPhrases[su.language]
		for _, score := range su.scores {
			_, err := syncService.SaveTranslation(ctx, user.ID, &model.SaveTranslationParams{
				OriginalPhrase:     phrase[0],
				UserTranslation:    phrase[1],
				CorrectTranslation: phrase[1],
				Score:              score,
				PracticeMode:       model.PracticeModeAuto,
				SourceLanguage:     model.LanguageFromCode(su.language),
				DifficultyLevel:    model.ProficiencyFromLevelCode(su.level),
			})
			if err != nil {
				log.Fatalf("Failed to save translation for %s: %v", su.email, err)
			}
		}
		log.Printf("Seeded %s (%d translations)", su.email, len(su.scores))
	}
	log.Println("Seeding completed")
}
