package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"you_translator/internal/model"
	"you_translator/internal/webutil"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーのUUIDをそのままコンテキストに設定します。DBでの存在チェックは行いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Cabeçalho X-User-ID ausente.", "", model.ErrUnauthorized))
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] invalid X-User-ID", "value", userIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID inválido.", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] user set to context (no validation)", "user_id", userID.String())
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
