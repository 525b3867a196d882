package service_test // 公開APIだけをテストする

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/repository"
	"you_translator/internal/repository/mocks"
	"you_translator/internal/service"
	servicemocks "you_translator/internal/service/mocks"
)

type sessionEvent struct {
	Event  model.SessionEvent
	UserID uuid.UUID
}

// --- テストスイートの定義 ---
type AuthServiceTestSuite struct {
	suite.Suite

	db               *gorm.DB
	mockUserRepo     *mocks.UserRepository
	mockTokenRepo    *mocks.TokenRepository
	mockIdentityRepo *mocks.IdentityRepository
	mockMailer       *servicemocks.Mailer
	storage          service.StorageService
	oauthServer      *httptest.Server
	cfg              *config.Config
	authService      service.AuthService
	events           []sessionEvent
}

func (s *AuthServiceTestSuite) SetupSuite() {
	// トランザクション用DB。リポジトリはモックなのでテーブルは不要
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.db = db

	// OAuth プロバイダのトークン/ユーザー情報エンドポイントの代わり
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"invalid_grant"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"provider-token","token_type":"bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer provider-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"id": 4242, "login": "octo", "name": "", "email": "", "avatar_url": "https://avatars.example.com/octo.png"}`)
	})
	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"email":"old@example.com","primary":false,"verified":true},{"email":"octo@example.com","primary":true,"verified":true}]`)
	})
	s.oauthServer = httptest.NewServer(mux)
}

func (s *AuthServiceTestSuite) TearDownSuite() {
	s.oauthServer.Close()
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// 各テストの前にモックとサービスを作り直す
func (s *AuthServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(mocks.UserRepository)
	s.mockTokenRepo = new(mocks.TokenRepository)
	s.mockIdentityRepo = new(mocks.IdentityRepository)
	s.mockMailer = new(servicemocks.Mailer)

	s.cfg = &config.Config{
		App: config.AppConfig{Name: "YouTranslator", FrontendURL: "http://localhost:3000"},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
	}
	s.storage = service.NewStorageService(repository.NewMemoryKVStore(), s.cfg)

	providers := map[string]*service.OAuthProvider{
		model.AuthProviderGitHub: {
			Config: &oauth2.Config{
				ClientID:     "gh-client",
				ClientSecret: "gh-secret",
				RedirectURL:  "http://localhost:8080/api/v1/auth/oauth/github/callback",
				Endpoint: oauth2.Endpoint{
					AuthURL:  s.oauthServer.URL + "/authorize",
					TokenURL: s.oauthServer.URL + "/token",
				},
			},
			UserInfoURL: s.oauthServer.URL + "/user",
			EmailsURL:   s.oauthServer.URL + "/user/emails",
		},
	}

	s.authService = service.NewAuthService(s.db, s.mockUserRepo, s.mockTokenRepo, s.mockIdentityRepo, s.storage, s.mockMailer, providers, s.cfg)

	s.events = nil
	s.authService.Subscribe(service.SessionMirror(s.storage))
	s.authService.Subscribe(func(ctx context.Context, event model.SessionEvent, userID uuid.UUID, session *model.AuthSession) {
		s.events = append(s.events, sessionEvent{Event: event, UserID: userID})
	})
}

func (s *AuthServiceTestSuite) assertMocks() {
	s.mockUserRepo.AssertExpectations(s.T())
	s.mockTokenRepo.AssertExpectations(s.T())
	s.mockIdentityRepo.AssertExpectations(s.T())
	s.mockMailer.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) assertAppError(err error, code string, sentinel error) {
	s.Require().Error(err)
	var appErr *model.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(code, appErr.Detail.Code)
	s.ErrorIs(err, sentinel)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// --- SignUp ---
func (s *AuthServiceTestSuite) TestSignUp() {
	testCases := []struct {
		name                string
		requireConfirmation bool
		req                 *model.SignUpRequest
		setupMocks          func()
		checkResult         func(session *model.AuthSession, err error)
	}{
		{
			name: "正常系: 登録してそのままサインインする",
			req:  &model.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "ana@example.com" && u.Enabled && u.EmailConfirmed &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
				})).Return(nil).Once()
				s.mockIdentityRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(i *model.Identity) bool {
					return i.AuthProvider == model.AuthProviderLocal && i.ProviderID == "ana@example.com"
				})).Return(nil).Once()
			},
			checkResult: func(session *model.AuthSession, err error) {
				s.Require().NoError(err)
				s.Equal("ana@example.com", session.User.Email)
				s.Equal("Ana", session.User.Name)

				userID, err := middleware.ParseUserToken(session.Token, "test-secret")
				s.Require().NoError(err)
				s.Equal(session.User.ID, userID.String())
				s.WithinDuration(time.Now().Add(15*time.Minute), session.ExpiresAt, 5*time.Second)

				s.Require().Len(s.events, 1)
				s.Equal(model.SessionSignedIn, s.events[0].Event)
			},
		},
		{
			name:                "正常系: メール確認が必要なら確認メールを送り EMAIL_NOT_CONFIRMED",
			requireConfirmation: true,
			req:                 &model.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return !u.EmailConfirmed
				})).Return(nil).Once()
				s.mockIdentityRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Identity")).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.AnythingOfType("*model.UserVerificationToken")).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "ana@example.com", "[YouTranslator] Confirme seu email",
					mock.MatchedBy(func(body string) bool {
						return strings.Contains(body, "http://localhost:3000/verify-email?token=")
					})).Return(nil).Once()
			},
			checkResult: func(session *model.AuthSession, err error) {
				s.Nil(session)
				s.assertAppError(err, "EMAIL_NOT_CONFIRMED", model.ErrForbidden)
				s.Empty(s.events)
			},
		},
		{
			name: "異常系: Emailが重複している",
			req:  &model.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(&model.User{}, nil).Once()
			},
			checkResult: func(session *model.AuthSession, err error) {
				s.Nil(session)
				s.assertAppError(err, "DUPLICATE_EMAIL", model.ErrConflict)
			},
		},
		{
			name: "異常系: 同時登録で一意制約に違反",
			req:  &model.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(model.ErrConflict).Once()
			},
			checkResult: func(session *model.AuthSession, err error) {
				s.assertAppError(err, "DUPLICATE_EMAIL", model.ErrConflict)
			},
		},
		{
			name: "異常系: パスワードが短い",
			req:  &model.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "123"},
			setupMocks: func() {
				// リポジトリは呼ばれない
			},
			checkResult: func(session *model.AuthSession, err error) {
				s.assertAppError(err, "VALIDATION_ERROR", model.ErrInvalidInput)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.Auth.RequireEmailConfirmation = tc.requireConfirmation
			tc.setupMocks()

			session, err := s.authService.SignUp(context.Background(), tc.req)

			tc.checkResult(session, err)
			s.assertMocks()
		})
	}
}

// --- SignIn ---
func (s *AuthServiceTestSuite) TestSignIn() {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	s.Require().NoError(err)
	newUser := func() *model.User {
		return &model.User{
			ID: uuid.New(), Email: "ana@example.com", Name: "Ana Maria", FirstName: "Ana",
			PasswordHash: string(hash), Enabled: true, EmailConfirmed: true,
		}
	}

	testCases := []struct {
		name                string
		requireConfirmation bool
		password            string
		setupMocks          func(user *model.User)
		wantCode            string
		wantErr             error
	}{
		{
			name:     "正常系: サインイン成功",
			password: "secret123",
			setupMocks: func(user *model.User) {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(user, nil).Once()
			},
		},
		{
			name:     "異常系: パスワード不一致",
			password: "wrong-pass",
			setupMocks: func(user *model.User) {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(user, nil).Once()
			},
			wantCode: "AUTHENTICATION_FAILED",
			wantErr:  model.ErrUnauthorized,
		},
		{
			name:     "異常系: ユーザーが存在しない",
			password: "secret123",
			setupMocks: func(user *model.User) {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(nil, model.ErrNotFound).Once()
			},
			wantCode: "AUTHENTICATION_FAILED",
			wantErr:  model.ErrUnauthorized,
		},
		{
			name:     "異常系: 無効化されたアカウント",
			password: "secret123",
			setupMocks: func(user *model.User) {
				user.Enabled = false
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(user, nil).Once()
			},
			wantCode: "ACCOUNT_DISABLED",
			wantErr:  model.ErrForbidden,
		},
		{
			name:                "異常系: メール未確認",
			requireConfirmation: true,
			password:            "secret123",
			setupMocks: func(user *model.User) {
				user.EmailConfirmed = false
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(user, nil).Once()
			},
			wantCode: "EMAIL_NOT_CONFIRMED",
			wantErr:  model.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.Auth.RequireEmailConfirmation = tc.requireConfirmation
			user := newUser()
			tc.setupMocks(user)

			session, err := s.authService.SignIn(context.Background(), &model.LoginRequest{Email: "ana@example.com", Password: tc.password})

			if tc.wantCode != "" {
				s.Nil(session)
				s.assertAppError(err, tc.wantCode, tc.wantErr)
				s.Empty(s.events)
			} else {
				s.Require().NoError(err)
				s.Equal(user.ID.String(), session.User.ID)
				s.Equal("Ana", session.User.Name)
				s.Require().Len(s.events, 1)
				s.Equal(user.ID, s.events[0].UserID)
			}
			s.assertMocks()
		})
	}
}

// --- セッションの複製 ---
func (s *AuthServiceTestSuite) TestCurrentSessionAndSignOut() {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := &model.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", PasswordHash: string(hash), Enabled: true, EmailConfirmed: true}
	s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").Return(user, nil).Once()

	_, err := s.authService.CurrentSession(ctx, user.ID)
	s.assertAppError(err, "SESSION_NOT_FOUND", model.ErrUnauthorized)

	signedIn, err := s.authService.SignIn(ctx, &model.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	s.Require().NoError(err)

	current, err := s.authService.CurrentSession(ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(signedIn.Token, current.Token)

	s.Require().NoError(s.authService.SignOut(ctx, user.ID))
	_, err = s.authService.CurrentSession(ctx, user.ID)
	s.assertAppError(err, "SESSION_NOT_FOUND", model.ErrUnauthorized)

	s.Equal([]sessionEvent{{model.SessionSignedIn, user.ID}, {model.SessionSignedOut, user.ID}}, s.events)
}

func (s *AuthServiceTestSuite) TestSubscribe_Unsubscribe() {
	var count int
	unsubscribe := s.authService.Subscribe(func(context.Context, model.SessionEvent, uuid.UUID, *model.AuthSession) {
		count++
	})
	s.Require().NoError(s.authService.SignOut(context.Background(), uuid.New()))
	unsubscribe()
	s.Require().NoError(s.authService.SignOut(context.Background(), uuid.New()))

	s.Equal(1, count)
	s.Len(s.events, 2)
}

// --- メール確認 ---
func (s *AuthServiceTestSuite) TestVerifyEmail() {
	userID := uuid.New()

	s.Run("正常系: 確認済みになりトークンが消える", func() {
		s.SetupTest()
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "tok").
			Return(&model.UserVerificationToken{Token: "tok", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
		s.mockUserRepo.On("SetEmailConfirmed", mock.Anything, mock.Anything, userID).Return(nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "tok").Return(nil).Once()

		s.NoError(s.authService.VerifyEmail(context.Background(), "tok"))
		s.assertMocks()
	})

	s.Run("異常系: 期限切れ", func() {
		s.SetupTest()
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "old").
			Return(&model.UserVerificationToken{Token: "old", UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)}, nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "old").Return(nil).Once()

		s.assertAppError(s.authService.VerifyEmail(context.Background(), "old"), "INVALID_TOKEN", model.ErrInvalidInput)
		s.assertMocks()
	})

	s.Run("異常系: 存在しないトークン", func() {
		s.SetupTest()
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "nope").Return(nil, model.ErrNotFound).Once()

		s.assertAppError(s.authService.VerifyEmail(context.Background(), "nope"), "INVALID_TOKEN", model.ErrInvalidInput)
		s.assertMocks()
	})
}

// --- パスワードリセット ---
func (s *AuthServiceTestSuite) TestPasswordReset() {
	userID := uuid.New()

	s.Run("正常系: 未登録のメールでも成功扱いで送信しない", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ghost@example.com").Return(nil, model.ErrNotFound).Once()

		s.NoError(s.authService.RequestPasswordReset(context.Background(), "ghost@example.com"))
		s.assertMocks()
	})

	s.Run("正常系: リセットメールを送る", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "ana@example.com").
			Return(&model.User{ID: userID, Email: "ana@example.com"}, nil).Once()
		s.mockTokenRepo.On("CreatePasswordResetToken", mock.Anything, mock.Anything, mock.MatchedBy(func(tok *model.PasswordResetToken) bool {
			return tok.UserID == userID && len(tok.Token) == 64
		})).Return(nil).Once()
		s.mockMailer.On("Send", mock.Anything, "ana@example.com", mock.Anything,
			mock.MatchedBy(func(body string) bool { return strings.Contains(body, "/reset-password?token=") })).Return(nil).Once()

		s.NoError(s.authService.RequestPasswordReset(context.Background(), "ana@example.com"))
		s.assertMocks()
	})

	s.Run("正常系: 新しいパスワードを設定する", func() {
		s.SetupTest()
		s.mockTokenRepo.On("FindPasswordResetToken", mock.Anything, mock.Anything, "reset").
			Return(&model.PasswordResetToken{Token: "reset", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
		s.mockUserRepo.On("SetPasswordHash", mock.Anything, mock.Anything, userID, mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-secret")) == nil
		})).Return(nil).Once()
		s.mockTokenRepo.On("DeletePasswordResetToken", mock.Anything, mock.Anything, "reset").Return(nil).Once()

		s.NoError(s.authService.ResetPassword(context.Background(), "reset", "new-secret"))
		s.assertMocks()
	})

	s.Run("異常系: 短いパスワード", func() {
		s.SetupTest()
		s.assertAppError(s.authService.ResetPassword(context.Background(), "reset", "123"), "VALIDATION_ERROR", model.ErrInvalidInput)
		s.assertMocks()
	})
}

// --- OAuth ---
func (s *AuthServiceTestSuite) TestOAuthURL() {
	authURL, err := s.authService.OAuthURL(model.AuthProviderGitHub, "state-123")
	s.Require().NoError(err)
	u, err := url.Parse(authURL)
	s.Require().NoError(err)
	s.Equal("gh-client", u.Query().Get("client_id"))
	s.Equal("state-123", u.Query().Get("state"))

	_, err = s.authService.OAuthURL("facebook", "state")
	s.assertAppError(err, "OAUTH_PROVIDER_NOT_SUPPORTED", model.ErrInvalidInput)
}

func (s *AuthServiceTestSuite) TestOAuthCallback() {
	s.Run("正常系: 初めてのプロバイダアカウントでユーザーを作成する", func() {
		s.SetupTest()
		s.mockIdentityRepo.On("FindByProvider", mock.Anything, mock.Anything, model.AuthProviderGitHub, "4242").Return(nil, model.ErrNotFound).Once()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "octo@example.com").Return(nil, model.ErrNotFound).Once()
		s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "octo@example.com" && u.Name == "octo" && u.EmailConfirmed &&
				u.AvatarURL == "https://avatars.example.com/octo.png" && u.PasswordHash == ""
		})).Return(nil).Once()
		s.mockIdentityRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(i *model.Identity) bool {
			return i.AuthProvider == model.AuthProviderGitHub && i.ProviderID == "4242"
		})).Return(nil).Once()

		session, err := s.authService.OAuthCallback(context.Background(), model.AuthProviderGitHub, "good-code")
		s.Require().NoError(err)
		s.Equal("octo@example.com", session.User.Email)
		s.Len(s.events, 1)
		s.assertMocks()
	})

	s.Run("正常系: 同じメールの既存ユーザーに紐付ける", func() {
		s.SetupTest()
		existing := &model.User{ID: uuid.New(), Email: "octo@example.com", Name: "Octo", Enabled: true}
		s.mockIdentityRepo.On("FindByProvider", mock.Anything, mock.Anything, model.AuthProviderGitHub, "4242").Return(nil, model.ErrNotFound).Once()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "octo@example.com").Return(existing, nil).Once()
		s.mockIdentityRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(i *model.Identity) bool {
			return i.UserID == existing.ID
		})).Return(nil).Once()

		session, err := s.authService.OAuthCallback(context.Background(), model.AuthProviderGitHub, "good-code")
		s.Require().NoError(err)
		s.Equal(existing.ID.String(), session.User.ID)
		s.assertMocks()
	})

	s.Run("正常系: 紐付け済みならそのユーザーでサインイン", func() {
		s.SetupTest()
		existing := &model.User{ID: uuid.New(), Email: "octo@example.com", Name: "Octo", Enabled: true}
		s.mockIdentityRepo.On("FindByProvider", mock.Anything, mock.Anything, model.AuthProviderGitHub, "4242").
			Return(&model.Identity{UserID: existing.ID, AuthProvider: model.AuthProviderGitHub, ProviderID: "4242"}, nil).Once()
		s.mockUserRepo.On("FindByID", mock.Anything, mock.Anything, existing.ID).Return(existing, nil).Once()

		session, err := s.authService.OAuthCallback(context.Background(), model.AuthProviderGitHub, "good-code")
		s.Require().NoError(err)
		s.Equal(existing.ID.String(), session.User.ID)
		s.assertMocks()
	})

	s.Run("異常系: 認可コードの交換に失敗", func() {
		s.SetupTest()
		_, err := s.authService.OAuthCallback(context.Background(), model.AuthProviderGitHub, "bad-code")
		s.assertAppError(err, "OAUTH_FAILED", model.ErrUnauthorized)
		s.Empty(s.events)
	})

	s.Run("異常系: 未対応のプロバイダ", func() {
		s.SetupTest()
		_, err := s.authService.OAuthCallback(context.Background(), "facebook", "good-code")
		s.assertAppError(err, "OAUTH_PROVIDER_NOT_SUPPORTED", model.ErrInvalidInput)
	})
}

func TestNewOAuthProviders(t *testing.T) {
	providers := service.NewOAuthProviders(&config.OAuthConfig{
		Google: config.OAuthProviderConfig{ClientID: "g-id", ClientSecret: "g-secret", RedirectURL: "http://localhost/cb"},
	})
	if _, ok := providers[model.AuthProviderGoogle]; !ok {
		t.Fatal("google provider should be configured")
	}
	if _, ok := providers[model.AuthProviderGitHub]; ok {
		t.Fatal("github provider should not be configured without client_id")
	}
}
