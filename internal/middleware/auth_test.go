package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := model.JWTCustomClaims{
		Email: "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// echoUserID はコンテキストのユーザーIDをそのまま返すハンドラです
func echoUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Write([]byte(userID.String()))
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	handler := middleware.JWTAuthMiddleware(&config.JWTConfig{SecretKey: testSecret})(http.HandlerFunc(echoUserID))

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "正常系: 有効なトークン",
			header:         "Bearer " + signToken(t, testSecret, userID.String(), time.Now().Add(time.Hour)),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "正常系: bearer は大文字小文字を区別しない",
			header:         "bearer " + signToken(t, testSecret, userID.String(), time.Now().Add(time.Hour)),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: ヘッダーなし",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: Bearer 以外のスキーム",
			header:         "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: 期限切れ",
			header:         "Bearer " + signToken(t, testSecret, userID.String(), time.Now().Add(-time.Minute)),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:           "異常系: 署名の鍵が違う",
			header:         "Bearer " + signToken(t, "other-secret", userID.String(), time.Now().Add(time.Hour)),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:           "異常系: subject がUUIDでない",
			header:         "Bearer " + signToken(t, testSecret, "not-a-uuid", time.Now().Add(time.Hour)),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, userID.String(), rr.Body.String())
				return
			}
			var resp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedCode, resp.Error.Code)
		})
	}
}

func TestParseUserToken(t *testing.T) {
	userID := uuid.New()

	got, err := middleware.ParseUserToken(signToken(t, testSecret, userID.String(), time.Now().Add(time.Hour)), testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = middleware.ParseUserToken(signToken(t, testSecret, "", time.Now().Add(time.Hour)), testSecret)
	assert.Error(t, err)
}

func TestDevUserContextMiddleware(t *testing.T) {
	userID := uuid.New()
	handler := middleware.DevUserContextMiddleware(http.HandlerFunc(echoUserID))

	t.Run("正常系: X-User-ID をそのまま使う", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, userID.String(), rr.Body.String())
	})

	for name, value := range map[string]string{
		"異常系: ヘッダーなし":   "",
		"異常系: UUIDでない": "user-1",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if value != "" {
				req.Header.Set("X-User-ID", value)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := middleware.GetUserIDFromContext(req.Context())
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}
