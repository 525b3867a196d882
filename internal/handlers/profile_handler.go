package handlers

import (
	"errors"
	"net/http"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/service"
	"you_translator/internal/webutil"
)

// multipartOverhead はマルチパートのヘッダー等に許容する余分なバイト数です
const multipartOverhead = 512 << 10

// ProfileHandler はオンボーディング、プロフィール、アバターのAPIを扱います
type ProfileHandler struct {
	sync           service.SyncService
	avatarMaxBytes int64
}

func NewProfileHandler(s service.SyncService, cfg *config.AvatarConfig) *ProfileHandler {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultAvatarMaxBytes
	}
	return &ProfileHandler{sync: s, avatarMaxBytes: maxBytes}
}

// Bootstrap はサインイン直後に呼ばれ、オンボーディングが必要かどうかを返します
func (h *ProfileHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.sync.Bootstrap(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, result)
}

func (h *ProfileHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.OnboardingRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode onboarding request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.sync.CompleteOnboarding(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Onboarding completed")
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.sync.GetProfile(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, profile)
}

// UpdateProfile は指定された項目だけを更新します
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateProfileRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode profile update body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.sync.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, profile)
}

// UploadAvatar は multipart の avatar フィールドで受け取った画像を保存します
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	limit := h.avatarMaxBytes + multipartOverhead
	tooLargeErr := model.NewAppError("AVATAR_TOO_LARGE", "A imagem deve ter no máximo 2MB.", "avatar", model.ErrInvalidInput)
	if r.ContentLength > limit {
		logger.Warn("Avatar upload too large", "content_length", r.ContentLength)
		webutil.HandleError(w, logger, tooLargeErr)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(h.avatarMaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Avatar upload too large", "limit", tooLarge.Limit)
			webutil.HandleError(w, logger, tooLargeErr)
			return
		}
		logger.Warn("Failed to parse multipart form", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "Envie a imagem no campo avatar.", "avatar", model.ErrInvalidInput))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("avatar")
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "Envie a imagem no campo avatar.", "avatar", model.ErrInvalidInput))
		return
	}
	defer file.Close()

	avatarURL, err := h.sync.UploadAvatar(r.Context(), userID, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Avatar uploaded", "size", header.Size)
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"avatar_url": avatarURL})
}

func (h *ProfileHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.sync.DeleteAvatar(r.Context(), userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
