package model

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthUser はセッションに含まれるユーザー情報です
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthSession はサインイン中のセッションです。ローカルストアにも複製されます。
type AuthSession struct {
	User      AuthUser  `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionEvent はセッション変更通知の種類です
type SessionEvent string

const (
	SessionSignedIn  SessionEvent = "SIGNED_IN"
	SessionSignedOut SessionEvent = "SIGNED_OUT"
)

// SessionListener はセッションの変化を受け取ります。SIGNED_OUT では session は nil です。
type SessionListener func(ctx context.Context, event SessionEvent, userID uuid.UUID, session *AuthSession)

// SignUpRequest は新規登録APIのリクエストボディ
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JWTCustomClaims はJWTに含めるクレーム
type JWTCustomClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// OAuthUserInfo はプロバイダから取得したユーザー情報です
type OAuthUserInfo struct {
	ProviderID string
	Email      string
	Name       string
	AvatarURL  string
}
