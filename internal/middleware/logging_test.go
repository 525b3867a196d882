package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains []string
		hidden   []string
	}{
		{
			name:     "正常系: password と token を伏せる",
			body:     `{"email":"ana@example.com","password":"secret123","token":"abc"}`,
			contains: []string{"ana@example.com", "[SENSITIVE]"},
			hidden:   []string{"secret123", `"abc"`},
		},
		{
			name:     "正常系: JSON でなければそのまま",
			body:     "plain text",
			contains: []string{"plain text"},
		},
		{
			name: "正常系: 空",
			body: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := maskBody([]byte(tc.body))
			if tc.body == "" {
				assert.Empty(t, got)
			}
			for _, s := range tc.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tc.hidden {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer abc")
	headers.Set("Content-Type", "application/json")
	headers.Add("Accept", "text/html")
	headers.Add("Accept", "application/json")

	got := formatHeaders(headers)

	assert.Equal(t, "[SENSITIVE]", got["Authorization"])
	assert.Equal(t, "application/json", got["Content-Type"])
	assert.Equal(t, "text/html, application/json", got["Accept"])
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var inner *slog.Logger
	handler := chimiddleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = GetLogger(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"jwt-value"}`))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", strings.NewReader(`{"email":"ana@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, `{"token":"jwt-value"}`, rr.Body.String())
	require.NotNil(t, inner)

	logs := buf.String()
	assert.Contains(t, logs, "Request started")
	assert.Contains(t, logs, "Request completed")
	assert.Contains(t, logs, `"req_id"`)
	assert.Contains(t, logs, "ana@example.com")
	assert.NotContains(t, logs, "secret123")
	assert.NotContains(t, logs, "jwt-value")
	assert.NotContains(t, logs, "Bearer abc")
}

func TestGetLogger_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), GetLogger(req.Context()))
}
