package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"you_translator/internal/middleware"
)

// Handlers はルーターに登録するハンドラ一式です
type Handlers struct {
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Practice *PracticeHandler
	History  *HistoryHandler
	Home     *HomeHandler
}

type RouterConfig struct {
	Logger *slog.Logger
	CORS   cors.Options
	// AuthMiddleware は保護されたルートに適用します (JWT または開発用)
	AuthMiddleware func(http.Handler) http.Handler
	Health         http.HandlerFunc
	// StaticDir が空でなければ /static 配下で配信します (disk のアバター用)
	StaticDir      string
	RequestTimeout time.Duration
}

// NewRouter は /api/v1 のルートとミドルウェアを設定したルーターを返します
func NewRouter(h Handlers, cfg RouterConfig) *chi.Mux {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(cfg.Logger))
	r.Use(cors.New(cfg.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.SignUp)
			r.Post("/signin", h.Auth.SignIn)
			r.Get("/verify", h.Auth.VerifyEmail)
			r.Post("/password/forgot", h.Auth.RequestPasswordReset)
			r.Post("/password/reset", h.Auth.ResetPassword)
			r.Get("/oauth/{provider}", h.Auth.OAuthStart)
			r.Get("/oauth/{provider}/callback", h.Auth.OAuthCallback)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware)

			r.Post("/auth/signout", h.Auth.SignOut)
			r.Get("/auth/session", h.Auth.Session)

			r.Get("/bootstrap", h.Profile.Bootstrap)
			r.Post("/onboarding", h.Profile.CompleteOnboarding)
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.Profile.GetProfile)
				r.Patch("/", h.Profile.UpdateProfile)
				r.Post("/avatar", h.Profile.UploadAvatar)
				r.Delete("/avatar", h.Profile.DeleteAvatar)
			})

			r.Get("/home", h.Home.Home)
			r.Get("/leaderboard", h.Home.Leaderboard)

			r.Route("/practice", func(r chi.Router) {
				r.Get("/phrase", h.Practice.Phrase)
				r.Post("/submit", h.Practice.Submit)
			})

			r.Route("/history", func(r chi.Router) {
				r.Get("/", h.History.List)
				r.Get("/{id}", h.History.Get)
				r.Delete("/{id}", h.History.Delete)
			})
			r.Get("/stats", h.History.Stats)
		})
	})

	if cfg.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	if cfg.Health != nil {
		r.Get("/health", cfg.Health)
	}

	return r
}
