package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/repository"
	"you_translator/internal/webutil"
)

//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
type AuthService interface {
	SignUp(ctx context.Context, req *model.SignUpRequest) (*model.AuthSession, error)
	VerifyEmail(ctx context.Context, token string) error
	SignIn(ctx context.Context, req *model.LoginRequest) (*model.AuthSession, error)
	OAuthURL(provider, state string) (string, error)
	OAuthCallback(ctx context.Context, provider, code string) (*model.AuthSession, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	SignOut(ctx context.Context, userID uuid.UUID) error
	CurrentSession(ctx context.Context, userID uuid.UUID) (*model.AuthSession, error)
	// Subscribe はリスナーを登録し、解除用の関数を返します
	Subscribe(listener model.SessionListener) (unsubscribe func())
}

// OAuthProvider は OAuth プロバイダの設定とユーザー情報の取得先です
type OAuthProvider struct {
	Config      *oauth2.Config
	UserInfoURL string
	// EmailsURL はプロフィールにメールが無い場合の取得先 (GitHub のみ)
	EmailsURL string
}

// NewOAuthProviders は client_id が設定されているプロバイダだけを返します
func NewOAuthProviders(cfg *config.OAuthConfig) map[string]*OAuthProvider {
	providers := make(map[string]*OAuthProvider)
	if cfg.Google.ClientID != "" {
		providers[model.AuthProviderGoogle] = &OAuthProvider{
			Config: &oauth2.Config{
				ClientID:     cfg.Google.ClientID,
				ClientSecret: cfg.Google.ClientSecret,
				RedirectURL:  cfg.Google.RedirectURL,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		}
	}
	if cfg.GitHub.ClientID != "" {
		providers[model.AuthProviderGitHub] = &OAuthProvider{
			Config: &oauth2.Config{
				ClientID:     cfg.GitHub.ClientID,
				ClientSecret: cfg.GitHub.ClientSecret,
				RedirectURL:  cfg.GitHub.RedirectURL,
				Endpoint:     github.Endpoint,
				Scopes:       []string{"read:user", "user:email"},
			},
			UserInfoURL: "https://api.github.com/user",
			EmailsURL:   "https://api.github.com/user/emails",
		}
	}
	return providers
}

type authService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	tokenRepo    repository.TokenRepository
	identityRepo repository.IdentityRepository
	storage      StorageService
	mailer       Mailer
	providers    map[string]*OAuthProvider
	cfg          *config.Config

	mu        sync.RWMutex
	listeners map[int]model.SessionListener
	nextID    int
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	identityRepo repository.IdentityRepository,
	storage StorageService,
	mailer Mailer,
	providers map[string]*OAuthProvider,
	cfg *config.Config,
) AuthService {
	return &authService{
		db:           db,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		identityRepo: identityRepo,
		storage:      storage,
		mailer:       mailer,
		providers:    providers,
		cfg:          cfg,
		listeners:    make(map[int]model.SessionListener),
	}
}

// SignUp は新しいユーザーを登録します。
// メール確認が必須の設定では確認メールを送信し、EMAIL_NOT_CONFIRMED を返します。
func (s *authService) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.AuthSession, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}

	requireConfirmation := s.cfg.Auth.RequireEmailConfirmation
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists")
			return model.NewAppError("DUPLICATE_EMAIL", "Este email já está cadastrado.", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao processar a senha.", "", err)
		}

		user := &model.User{
			ID:             uuid.New(),
			Email:          req.Email,
			Name:           req.Name,
			PasswordHash:   string(hashedPassword),
			Enabled:        true,
			EmailConfirmed: !requireConfirmation,
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_EMAIL", "Este email já está cadastrado.", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível criar a conta.", "", err)
		}
		if err := s.identityRepo.Create(ctx, tx, &model.Identity{
			UserID:       user.ID,
			AuthProvider: model.AuthProviderLocal,
			ProviderID:   user.Email,
		}); err != nil {
			logger.Error("Failed to create local identity", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível criar a conta.", "", err)
		}
		newUser = user

		if !requireConfirmation {
			return nil
		}
		tokenString, err := s.generateAndSaveVerificationToken(ctx, tx, user.ID)
		if err != nil {
			return err
		}
		if err := s.sendVerificationEmail(ctx, user.Email, tokenString); err != nil {
			return model.NewAppError("EMAIL_SEND_FAILED", "Não foi possível enviar o email de confirmação. Tente novamente mais tarde.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if requireConfirmation {
		logger.Info("User registered, waiting for email confirmation", "user_id", newUser.ID)
		return nil, model.NewAppError("EMAIL_NOT_CONFIRMED", "Por favor, confirme seu email antes de fazer login", "", model.ErrForbidden)
	}

	logger.Info("User registered", "user_id", newUser.ID)
	return s.startSession(ctx, newUser)
}

// VerifyEmail はトークンを検証し、メールアドレスを確認済みにします
func (s *authService) VerifyEmail(ctx context.Context, tokenString string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindVerificationToken(ctx, tx, tokenString)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Verification token not found")
				return model.NewAppError("INVALID_TOKEN", "Este link é inválido ou já foi utilizado.", "token", model.ErrInvalidInput)
			}
			logger.Error("Error finding verification token", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
		}

		if time.Now().After(token.ExpiresAt) {
			logger.Warn("Verification token expired", "expires_at", token.ExpiresAt)
			_ = s.tokenRepo.DeleteVerificationToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "Este link expirou.", "token", model.ErrInvalidInput)
		}

		if err := s.userRepo.SetEmailConfirmed(ctx, tx, token.UserID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "Conta não encontrada.", "", model.ErrNotFound)
			}
			logger.Error("Failed to confirm email", "error", err, "user_id", token.UserID)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível confirmar o email.", "", err)
		}

		// 削除に失敗しても確認自体は成功とする
		if err := s.tokenRepo.DeleteVerificationToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used verification token", "error", err)
		}

		logger.Info("Email verified", "user_id", token.UserID)
		return nil
	})
}

// SignIn はメールアドレスとパスワードで認証し、セッションを返します
func (s *authService) SignIn(ctx context.Context, req *model.LoginRequest) (*model.AuthSession, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Email ou senha incorretos.", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
	}

	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.ID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Email ou senha incorretos.", "", model.ErrUnauthorized)
	}
	if !user.Enabled {
		logger.Warn("Login failed: account disabled", "user_id", user.ID)
		return nil, model.NewAppError("ACCOUNT_DISABLED", "Esta conta está desativada.", "", model.ErrForbidden)
	}
	if s.cfg.Auth.RequireEmailConfirmation && !user.EmailConfirmed {
		logger.Warn("Login failed: email not confirmed", "user_id", user.ID)
		return nil, model.NewAppError("EMAIL_NOT_CONFIRMED", "Por favor, confirme seu email antes de fazer login", "", model.ErrForbidden)
	}

	logger.Info("Login successful", "user_id", user.ID)
	return s.startSession(ctx, user)
}

func (s *authService) OAuthURL(provider, state string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", model.NewAppError("OAUTH_PROVIDER_NOT_SUPPORTED", "Provedor de login não suportado.", "provider", model.ErrInvalidInput)
	}
	return p.Config.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// OAuthCallback は認可コードを交換し、プロバイダのアカウントに紐づくユーザーでサインインします
func (s *authService) OAuthCallback(ctx context.Context, provider, code string) (*model.AuthSession, error) {
	logger := middleware.GetLogger(ctx).With("provider", provider)

	p, ok := s.providers[provider]
	if !ok {
		return nil, model.NewAppError("OAUTH_PROVIDER_NOT_SUPPORTED", "Provedor de login não suportado.", "provider", model.ErrInvalidInput)
	}
	if code == "" {
		return nil, model.NewAppError("OAUTH_FAILED", "Código de autorização ausente.", "code", model.ErrInvalidInput)
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	token, err := p.Config.Exchange(exchangeCtx, code)
	if err != nil {
		logger.Warn("Failed to exchange OAuth code", "error", err)
		return nil, model.NewAppError("OAUTH_FAILED", "Não foi possível concluir o login.", "", model.ErrUnauthorized)
	}
	info, err := s.fetchOAuthUserInfo(exchangeCtx, provider, p, token)
	if err != nil {
		logger.Warn("Failed to fetch OAuth user info", "error", err)
		return nil, model.NewAppError("OAUTH_FAILED", "Não foi possível obter os dados da conta.", "", errors.Join(model.ErrUnavailable, err))
	}
	if info.Email == "" {
		return nil, model.NewAppError("OAUTH_EMAIL_REQUIRED", "A conta precisa ter um email verificado.", "email", model.ErrInvalidInput)
	}

	var user *model.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		identity, err := s.identityRepo.FindByProvider(ctx, tx, provider, info.ProviderID)
		if err == nil {
			user, err = s.userRepo.FindByID(ctx, tx, identity.UserID)
			return err
		}
		if !errors.Is(err, model.ErrNotFound) {
			return err
		}

		// 同じメールのユーザーが居れば紐付け、居なければ作成する
		user, err = s.userRepo.FindByEmail(ctx, tx, info.Email)
		if errors.Is(err, model.ErrNotFound) {
			name := info.Name
			if name == "" {
				name = strings.SplitN(info.Email, "@", 2)[0]
			}
			user = &model.User{
				ID:             uuid.New(),
				Email:          info.Email,
				Name:           name,
				AvatarURL:      info.AvatarURL,
				Enabled:        true,
				EmailConfirmed: true,
			}
			err = s.userRepo.Create(ctx, tx, user)
		}
		if err != nil {
			return err
		}
		return s.identityRepo.Create(ctx, tx, &model.Identity{
			UserID:       user.ID,
			AuthProvider: provider,
			ProviderID:   info.ProviderID,
		})
	})
	if err != nil {
		logger.Error("Failed to link OAuth identity", "error", err)
		return nil, model.NewAppError("OAUTH_FAILED", "Não foi possível concluir o login.", "", err)
	}
	if !user.Enabled {
		return nil, model.NewAppError("ACCOUNT_DISABLED", "Esta conta está desativada.", "", model.ErrForbidden)
	}

	logger.Info("OAuth login successful", "user_id", user.ID)
	return s.startSession(ctx, user)
}

func (s *authService) fetchOAuthUserInfo(ctx context.Context, provider string, p *OAuthProvider, token *oauth2.Token) (*model.OAuthUserInfo, error) {
	client := p.Config.Client(ctx, token)

	switch provider {
	case model.AuthProviderGoogle:
		var payload struct {
			ID      string `json:"id"`
			Email   string `json:"email"`
			Name    string `json:"name"`
			Picture string `json:"picture"`
		}
		if err := getJSON(ctx, client, p.UserInfoURL, &payload); err != nil {
			return nil, fmt.Errorf("google userinfo: %w", err)
		}
		return &model.OAuthUserInfo{ProviderID: payload.ID, Email: payload.Email, Name: payload.Name, AvatarURL: payload.Picture}, nil

	case model.AuthProviderGitHub:
		var payload struct {
			ID        int64  `json:"id"`
			Login     string `json:"login"`
			Name      string `json:"name"`
			Email     string `json:"email"`
			AvatarURL string `json:"avatar_url"`
		}
		if err := getJSON(ctx, client, p.UserInfoURL, &payload); err != nil {
			return nil, fmt.Errorf("github user: %w", err)
		}
		info := &model.OAuthUserInfo{
			ProviderID: strconv.FormatInt(payload.ID, 10),
			Email:      payload.Email,
			Name:       payload.Name,
			AvatarURL:  payload.AvatarURL,
		}
		if info.Name == "" {
			info.Name = payload.Login
		}
		if info.Email == "" && p.EmailsURL != "" {
			var emails []struct {
				Email    string `json:"email"`
				Primary  bool   `json:"primary"`
				Verified bool   `json:"verified"`
			}
			if err := getJSON(ctx, client, p.EmailsURL, &emails); err != nil {
				return nil, fmt.Errorf("github emails: %w", err)
			}
			for _, e := range emails {
				if e.Primary && e.Verified {
					info.Email = e.Email
					break
				}
			}
		}
		return info, nil
	}
	return nil, fmt.Errorf("unsupported provider: %s", provider)
}

func getJSON(ctx context.Context, client *http.Client, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	logger := middleware.GetLogger(ctx).With("email", email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 存在しないことを悟られないよう成功として扱う
			logger.Warn("Password reset requested for non-existent email")
			return nil
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Ocorreu um erro interno no servidor.", "", err)
	}

	tokenString, err := s.generateAndSavePasswordResetToken(ctx, s.db, user.ID)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.App.FrontendURL, tokenString)
	subject := fmt.Sprintf("[%s] Redefinição de senha", s.appName())
	body := fmt.Sprintf("Para redefinir sua senha, acesse o link abaixo:\n%s\n\nEste link expira em 1 hora.", resetURL)

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		return model.NewAppError("EMAIL_SEND_FAILED", "Não foi possível enviar o email.", "", err)
	}

	logger.Info("Password reset email sent")
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	logger := middleware.GetLogger(ctx)

	if len(newPassword) < 6 {
		return model.NewAppError("VALIDATION_ERROR", "A senha deve ter pelo menos 6 caracteres.", "password", model.ErrInvalidInput)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindPasswordResetToken(ctx, tx, tokenString)
		if err != nil {
			return model.NewAppError("INVALID_TOKEN", "Este link é inválido ou já foi utilizado.", "token", model.ErrInvalidInput)
		}
		if time.Now().After(token.ExpiresAt) {
			_ = s.tokenRepo.DeletePasswordResetToken(ctx, tx, tokenString)
			return model.NewAppError("INVALID_TOKEN", "Este link expirou.", "token", model.ErrInvalidInput)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao processar a senha.", "", err)
		}
		if err := s.userRepo.SetPasswordHash(ctx, tx, token.UserID, string(hashedPassword)); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Não foi possível atualizar a senha.", "", err)
		}

		if err := s.tokenRepo.DeletePasswordResetToken(ctx, tx, tokenString); err != nil {
			logger.Error("Failed to delete used password reset token", "error", err)
		}

		logger.Info("Password reset successfully", "user_id", token.UserID)
		return nil
	})
}

// SignOut はリスナーに SIGNED_OUT を通知します。トークン自体は期限まで有効です。
func (s *authService) SignOut(ctx context.Context, userID uuid.UUID) error {
	s.notify(ctx, model.SessionSignedOut, userID, nil)
	middleware.GetLogger(ctx).Info("Signed out")
	return nil
}

// CurrentSession はローカルストアに複製されたセッションを返します
func (s *authService) CurrentSession(ctx context.Context, userID uuid.UUID) (*model.AuthSession, error) {
	session := s.storage.GetAuthSession(ctx, UserNamespace(userID))
	if session == nil || time.Now().After(session.ExpiresAt) {
		return nil, model.NewAppError("SESSION_NOT_FOUND", "Nenhuma sessão ativa.", "", model.ErrUnauthorized)
	}
	return session, nil
}

func (s *authService) Subscribe(listener model.SessionListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// SessionMirror はセッションの変化をローカルストアの auth キーに複製するリスナーです
func SessionMirror(storage StorageService) model.SessionListener {
	return func(ctx context.Context, event model.SessionEvent, userID uuid.UUID, session *model.AuthSession) {
		ns := UserNamespace(userID)
		switch {
		case event == model.SessionSignedIn && session != nil:
			storage.SetAuthSession(ctx, ns, *session)
		case event == model.SessionSignedOut:
			storage.ClearAuthSession(ctx, ns)
		}
	}
}

func (s *authService) notify(ctx context.Context, event model.SessionEvent, userID uuid.UUID, session *model.AuthSession) {
	s.mu.RLock()
	listeners := make([]model.SessionListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l(ctx, event, userID, session)
	}
}

// --- ヘルパー関数 ---

func (s *authService) appName() string {
	if s.cfg.App.Name != "" {
		return s.cfg.App.Name
	}
	return config.AppName
}

// startSession は JWT を発行し、リスナーに SIGNED_IN を通知します
func (s *authService) startSession(ctx context.Context, user *model.User) (*model.AuthSession, error) {
	ttl := s.cfg.JWT.AccessTokenTTL
	if ttl <= 0 {
		ttl = config.DefaultAccessTokenTTL
	}
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := &model.JWTCustomClaims{
		Email: user.Email,
		Name:  user.DisplayName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.appName(),
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao gerar o token de acesso.", "", err)
	}

	session := &model.AuthSession{
		User:      model.AuthUser{ID: user.ID.String(), Email: user.Email, Name: user.DisplayName()},
		Token:     signedToken,
		ExpiresAt: expiresAt,
	}
	s.notify(ctx, model.SessionSignedIn, user.ID, session)
	return session, nil
}

func randomToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

func (s *authService) generateAndSaveVerificationToken(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (string, error) {
	tokenString, err := randomToken()
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to generate random bytes for token", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao gerar o token.", "", err)
	}
	verificationToken := &model.UserVerificationToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := s.tokenRepo.CreateVerificationToken(ctx, tx, verificationToken); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao salvar o token.", "", err)
	}
	return tokenString, nil
}

func (s *authService) sendVerificationEmail(ctx context.Context, email, token string) error {
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.App.FrontendURL, token)
	subject := fmt.Sprintf("[%s] Confirme seu email", s.appName())
	body := fmt.Sprintf("Obrigado por se cadastrar no %s!\n\nClique no link abaixo para confirmar seu email:\n%s\n\nEste link expira em 24 horas.", s.appName(), verifyURL)

	middleware.GetLogger(ctx).Info("Sending verification email", "to", email)
	return s.mailer.Send(ctx, email, subject, body)
}

func (s *authService) generateAndSavePasswordResetToken(ctx context.Context, db *gorm.DB, userID uuid.UUID) (string, error) {
	tokenString, err := randomToken()
	if err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao gerar o token.", "", err)
	}
	resetToken := &model.PasswordResetToken{
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := s.tokenRepo.CreatePasswordResetToken(ctx, db, resetToken); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao salvar o token.", "", err)
	}
	return tokenString, nil
}
