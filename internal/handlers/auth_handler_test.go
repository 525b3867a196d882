package handlers_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"you_translator/internal/model"
)

func TestAuthHandler_SignUp(t *testing.T) {
	session := &model.AuthSession{
		User:      model.AuthUser{ID: uuid.NewString(), Email: "ana@example.com", Name: "Ana"},
		Token:     "jwt-token",
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	validBody := map[string]string{"name": "Ana", "email": "ana@example.com", "password": "secret123"}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mockServices)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 登録してセッションを返す",
			body: validBody,
			setupMock: func(m *mockServices) {
				m.auth.On("SignUp", mock.Anything, &model.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"}).
					Return(session, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "異常系: メール確認待ち",
			body: validBody,
			setupMock: func(m *mockServices) {
				m.auth.On("SignUp", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("EMAIL_NOT_CONFIRMED", "Por favor, confirme seu email antes de fazer login", "", model.ErrForbidden)).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "EMAIL_NOT_CONFIRMED",
		},
		{
			name: "異常系: Emailが重複している",
			body: validBody,
			setupMock: func(m *mockServices) {
				m.auth.On("SignUp", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "Este email já está cadastrado.", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_EMAIL",
		},
		{
			name:           "異常系: JSONが壊れている",
			body:           `{"name": "Ana",`,
			setupMock:      func(m *mockServices) { /* サービスは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: 未知のフィールド",
			body:           map[string]string{"name": "Ana", "email": "ana@example.com", "password": "secret123", "role": "admin"},
			setupMock:      func(m *mockServices) { /* サービスは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, m := newMockRouter(t)
			tc.setupMock(m)

			rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/signup", tc.body, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assert.Equal(t, tc.expectedCode, decodeErrorResponse(t, rr).Code)
				return
			}
			got := decodeJSON[model.AuthSession](t, rr.Body.Bytes())
			assert.Equal(t, session.Token, got.Token)
			assert.Equal(t, session.User, got.User)
			assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))
		})
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	t.Run("正常系: サインイン成功", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("SignIn", mock.Anything, &model.LoginRequest{Email: "ana@example.com", Password: "secret123"}).
			Return(&model.AuthSession{Token: "jwt-token"}, nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/signin",
			map[string]string{"email": "ana@example.com", "password": "secret123"}, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "jwt-token", decodeJSON[model.AuthSession](t, rr.Body.Bytes()).Token)
	})

	t.Run("異常系: 認証失敗は401", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("SignIn", mock.Anything, mock.Anything).
			Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "Email ou senha incorretos.", "", model.ErrUnauthorized)).Once()

		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/signin",
			map[string]string{"email": "ana@example.com", "password": "wrong"}, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "AUTHENTICATION_FAILED", decodeErrorResponse(t, rr).Code)
	})

	t.Run("異常系: 予期せぬエラーは詳細を隠す", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("SignIn", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused")).Once()

		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/signin",
			map[string]string{"email": "ana@example.com", "password": "secret123"}, nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		detail := decodeErrorResponse(t, rr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", detail.Code)
		assert.NotContains(t, detail.Message, "pq")
	})
}

func TestAuthHandler_SessionAndSignOut(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 現在のセッション", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("CurrentSession", mock.Anything, userID).Return(&model.AuthSession{Token: "jwt-token"}, nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/auth/session", nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: セッションが無い", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("CurrentSession", mock.Anything, userID).
			Return(nil, model.NewAppError("SESSION_NOT_FOUND", "Nenhuma sessão ativa.", "", model.ErrUnauthorized)).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/auth/session", nil, &userID))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "SESSION_NOT_FOUND", decodeErrorResponse(t, rr).Code)
	})

	t.Run("異常系: 認証ヘッダーが無い", func(t *testing.T) {
		router, _ := newMockRouter(t)
		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/signout", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("正常系: サインアウト", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("SignOut", mock.Anything, userID).Return(nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/signout", nil, &userID))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	t.Run("正常系: 確認成功", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("VerifyEmail", mock.Anything, "abcdef0123456789").Return(nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/auth/verify?token=abcdef0123456789", nil, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: トークンが無い", func(t *testing.T) {
		router, _ := newMockRouter(t)
		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/auth/verify", nil, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "token", decodeErrorResponse(t, rr).Field)
	})

	t.Run("異常系: 期限切れ", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("VerifyEmail", mock.Anything, "old").
			Return(model.NewAppError("INVALID_TOKEN", "Este link expirou.", "token", model.ErrInvalidInput)).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/auth/verify?token=old", nil, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeErrorResponse(t, rr).Code)
	})
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	t.Run("正常系: リセットメールの送信", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("RequestPasswordReset", mock.Anything, "ana@example.com").Return(nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/password/forgot",
			map[string]string{"email": "ana@example.com"}, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: メール形式が不正ならサービスを呼ばない", func(t *testing.T) {
		router, _ := newMockRouter(t)
		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/password/forgot",
			map[string]string{"email": "not-an-email"}, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		detail := decodeErrorResponse(t, rr)
		assert.Equal(t, "VALIDATION_ERROR", detail.Code)
		assert.Equal(t, "email", detail.Field)
	})

	t.Run("正常系: 新しいパスワードの設定", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("ResetPassword", mock.Anything, "reset-token", "new-secret").Return(nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/password/reset",
			map[string]string{"token": "reset-token", "password": "new-secret"}, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 短いパスワード", func(t *testing.T) {
		router, _ := newMockRouter(t)
		rr := executeRequest(router, createRequest(t, http.MethodPost, "/api/v1/auth/password/reset",
			map[string]string{"token": "reset-token", "password": "123"}, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "password", decodeErrorResponse(t, rr).Field)
	})
}

func TestAuthHandler_OAuth(t *testing.T) {
	t.Run("正常系: state を Cookie に保存してリダイレクト", func(t *testing.T) {
		router, m := newMockRouter(t)
		var gotState string
		m.auth.On("OAuthURL", "github", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { gotState = args.String(1) }).
			Return("https://github.example.com/login/oauth/authorize?state=x", nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/auth/oauth/github", nil, nil))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "https://github.example.com/login/oauth/authorize?state=x", rr.Header().Get("Location"))
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "oauth_state", cookies[0].Name)
		assert.Equal(t, gotState, cookies[0].Value)
		assert.Len(t, gotState, 32)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("異常系: 未対応のプロバイダ", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("OAuthURL", "facebook", mock.Anything).
			Return("", model.NewAppError("OAUTH_PROVIDER_NOT_SUPPORTED", "Provedor de login não suportado.", "provider", model.ErrInvalidInput)).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/auth/oauth/facebook", nil, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("正常系: state が一致すればサインイン", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.auth.On("OAuthCallback", mock.Anything, "github", "auth-code").Return(&model.AuthSession{Token: "jwt-token"}, nil).Once()

		req := createRequest(t, http.MethodGet, "/api/v1/auth/oauth/github/callback?code=auth-code&state=s123", nil, nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s123"})
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "jwt-token", decodeJSON[model.AuthSession](t, rr.Body.Bytes()).Token)
		assert.True(t, strings.Contains(rr.Header().Get("Set-Cookie"), "oauth_state=;"))
	})

	t.Run("異常系: state が一致しない", func(t *testing.T) {
		router, _ := newMockRouter(t)
		req := createRequest(t, http.MethodGet, "/api/v1/auth/oauth/github/callback?code=auth-code&state=forged", nil, nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s123"})
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "INVALID_OAUTH_STATE", decodeErrorResponse(t, rr).Code)
	})

	t.Run("異常系: プロバイダ側で拒否された", func(t *testing.T) {
		router, _ := newMockRouter(t)
		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/auth/oauth/google/callback?error=access_denied", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
