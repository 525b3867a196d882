// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"you_translator/internal/config"
	"you_translator/internal/handlers"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
	servicemocks "you_translator/internal/service/mocks"
)

// mockServices はハンドラに注入するサービスのモック一式です
type mockServices struct {
	auth        *servicemocks.AuthService
	sync        *servicemocks.SyncService
	leaderboard *servicemocks.LeaderboardService
	practice    *servicemocks.PracticeService
}

// newMockRouter はモックのサービスと開発用認証 (X-User-ID) でルーターを組み立てます
func newMockRouter(t *testing.T) (*chi.Mux, *mockServices) {
	t.Helper()
	m := &mockServices{
		auth:        servicemocks.NewAuthService(t),
		sync:        servicemocks.NewSyncService(t),
		leaderboard: servicemocks.NewLeaderboardService(t),
		practice:    servicemocks.NewPracticeService(t),
	}
	router := handlers.NewRouter(handlers.Handlers{
		Auth:     handlers.NewAuthHandler(m.auth),
		Profile:  handlers.NewProfileHandler(m.sync, &config.AvatarConfig{MaxBytes: 1024}),
		Practice: handlers.NewPracticeHandler(m.practice),
		History:  handlers.NewHistoryHandler(m.sync),
		Home:     handlers.NewHomeHandler(m.sync, m.leaderboard),
	}, handlers.RouterConfig{
		Logger:         testLogger,
		CORS:           cors.Options{AllowedOrigins: []string{"*"}},
		AuthMiddleware: middleware.DevUserContextMiddleware,
	})
	return router, m
}

// executeRequest はテスト用のHTTPリクエストを実行し、レスポンスレコーダーを返します
func executeRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// createRequest はテスト用のHTTPリクエストを作成します。
// userID が指定されていれば X-User-ID ヘッダーを追加します。
func createRequest(t *testing.T, method, url string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody = strings.NewReader(b)
		case []byte:
			reqBody = bytes.NewReader(b)
		default:
			encoded, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBody = bytes.NewReader(encoded)
		}
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// decodeErrorResponse はエラーレスポンスの中身を取り出します
func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "Error response body is not JSON: %s", rr.Body.String())
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
	return errResp.Error
}

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method string
	Path   string
	Body   interface{}
	Token  string
}

// sendRequest は実サーバーにリクエストを送り、ステータスを検証してボディを返します。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) []byte {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		reqBodyBytes, err := json.Marshal(details.Body)
		require.NoError(t, err, "Failed to marshal request body")
		reqBodyReader = bytes.NewReader(reqBodyBytes)
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")
	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.Token != "" {
		req.Header.Set("Authorization", "Bearer "+details.Token)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	require.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch for %s %s: %s", details.Method, details.Path, string(respBodyBytes))

	return respBodyBytes
}

// decodeJSON はレスポンスボディを指定の型にデコードします
func decodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), "Failed to decode body: %s", string(body))
	return v
}
