package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/service"
	"you_translator/internal/webutil"
)

// oauthStateCookie は OAuth の state を往復させる Cookie 名です
const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// SignUp は新規ユーザーを登録します。メール確認が必要な設定では 403 EMAIL_NOT_CONFIRMED を返します。
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SignUpRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode sign-up request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	session, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, session)
}

// SignIn はユーザーを認証し、JWT を含むセッションを返します
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode sign-in request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	session, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		// サービス層でログは出力済み
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session)
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.SignOut(r.Context(), userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Sessão encerrada."})
}

// Session は現在のセッションを返します
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	session, err := h.service.CurrentSession(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session)
}

// VerifyEmail は確認メールのリンクから呼ばれ、メールアドレスを確認済みにします
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	token := r.URL.Query().Get("token")
	if token == "" {
		logger.Warn("Verification attempt with no token")
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST", "O token de confirmação é obrigatório.", "token", model.ErrInvalidInput))
		return
	}
	logger = logger.With("token_prefix", token[:min(8, len(token))]) // トークンの先頭だけログに残す

	if err := h.service.VerifyEmail(r.Context(), token); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Email successfully verified")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Email confirmado com sucesso. Faça login para continuar.",
	})
}

func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	// 1. リクエストボディをデコード
	var req model.ForgotPasswordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode forgot-password request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	// 2. バリデーション
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// 3. サービス層の呼び出し
	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// ユーザーが存在しない場合も同じメッセージを返す
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Se o email estiver cadastrado, você receberá um link para redefinir sua senha. Verifique também a caixa de spam.",
	})
}

// ResetPassword は新しいパスワードへのリセットを実行します
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ResetPasswordRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode reset-password request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Senha atualizada com sucesso.",
	})
}

// OAuthStart は state を Cookie に保存し、プロバイダの認可画面へリダイレクトします
func (h *AuthHandler) OAuthStart(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	provider := chi.URLParam(r, "provider")

	state, err := newOAuthState()
	if err != nil {
		logger.Error("Failed to generate OAuth state", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	authURL, err := h.service.OAuthURL(provider, state)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, authURL, http.StatusFound)
}

// OAuthCallback は state を照合し、認可コードでサインインします
func (h *AuthHandler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	provider := chi.URLParam(r, "provider")
	query := r.URL.Query()

	if providerErr := query.Get("error"); providerErr != "" {
		logger.Warn("OAuth provider returned an error", "provider", provider, "error", providerErr)
		webutil.HandleError(w, logger, model.NewAppError("OAUTH_FAILED", "O login foi cancelado ou recusado.", "", model.ErrUnauthorized))
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != query.Get("state") {
		logger.Warn("OAuth state mismatch", "provider", provider)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_OAUTH_STATE", "A sessão de login expirou. Tente novamente.", "state", model.ErrInvalidInput))
		return
	}
	// state は一度きり
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	session, err := h.service.OAuthCallback(r.Context(), provider, query.Get("code"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session)
}

func newOAuthState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
