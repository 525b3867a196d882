package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"you_translator/internal/config"
	"you_translator/internal/model"
	"you_translator/internal/webutil"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、ユーザーIDをコンテキストに格納します
func JWTAuthMiddleware(cfg *config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Warn("JWT auth failed: missing or malformed Authorization header")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "É necessário estar autenticado.", "", model.ErrUnauthorized))
				return
			}

			userID, err := ParseUserToken(tokenString, cfg.SecretKey)
			if err != nil {
				logger.Warn("JWT auth failed: invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Sessão inválida ou expirada.", "", model.ErrUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// ParseUserToken は HS256 で署名されたトークンを検証し、subject のユーザーIDを返します
func ParseUserToken(tokenString, secret string) (uuid.UUID, error) {
	claims := &model.JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, errors.New("token is not valid")
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return uuid.Nil, errors.New("subject claim missing")
	}
	return uuid.Parse(subject)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// WithUserID はユーザーIDをコンテキストに格納し、ロガーにも user_id を付与します
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	return WithLogger(ctx, GetLogger(ctx).With("user_id", userID.String()))
}

// GetUserIDFromContext は認証ミドルウェアが格納したユーザーIDを取得します
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "Não foi possível identificar o usuário.", "", model.ErrUnauthorized)
	}
	return value, nil
}
