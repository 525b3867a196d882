package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名です (小文字)。
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

// sensitiveBodyFields は JSON ボディ内でマスキングするキーです
var sensitiveBodyFields = map[string]bool{
	"password":     true,
	"token":        true,
	"access_token": true,
}

// responseRecorder はステータスコードとレスポンスボディを記録します。
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		body:           new(bytes.Buffer),
	}
}

func (rr *responseRecorder) WriteHeader(statusCode int) {
	rr.statusCode = statusCode
	rr.ResponseWriter.WriteHeader(statusCode)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	rr.body.Write(b)
	return rr.ResponseWriter.Write(b)
}

// LoggingMiddleware はリクエスト単位のロガーをコンテキストに格納し、開始・完了ログを出力します。
// Debug レベルではヘッダーとボディ (機密項目はマスク) も出力します。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			debug := logger.Enabled(r.Context(), slog.LevelDebug)
			var reqBodyBytes []byte
			if debug && r.Body != nil && isJSON(r.Header.Get("Content-Type")) {
				reqBodyBytes, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(reqBodyBytes))
			}

			rec := newResponseRecorder(w)
			next.ServeHTTP(rec, r)

			latency := time.Since(startTime)
			logLevel := slog.LevelInfo
			if rec.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if rec.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			// ハンドラ内で user_id などが付与されたロガーを優先する
			GetLogger(r.Context()).Log(r.Context(), logLevel, "Request completed",
				"status", rec.statusCode,
				"latency_ms", float64(latency.Nanoseconds())/1e6,
				"bytes_out", rec.body.Len(),
			)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", maskBody(reqBodyBytes),
				)
				requestLogger.Debug("Response detail",
					"status", rec.statusCode,
					"headers", formatHeaders(rec.Header()),
					"body", maskBody(rec.body.Bytes()),
				)
			}
		})
	}
}

// WithLogger はロガーをコンテキストに格納します
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。未設定なら slog.Default() を返します。
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "application/json")
}

// maskBody は JSON オブジェクトの機密キーを伏せた文字列を返します。JSON でなければそのまま返します。
func maskBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(body, &obj); err != nil {
		return string(body)
	}
	for k := range obj {
		if sensitiveBodyFields[strings.ToLower(k)] {
			obj[k] = "[SENSITIVE]"
		}
	}
	masked, err := json.Marshal(obj)
	if err != nil {
		return string(body)
	}
	return string(masked)
}
