package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/service"
	"you_translator/internal/webutil"
)

// HistoryHandler は翻訳履歴と集計のAPIを扱います
type HistoryHandler struct {
	sync service.SyncService
}

func NewHistoryHandler(s service.SyncService) *HistoryHandler {
	return &HistoryHandler{sync: s}
}

// parseLimit はクエリの limit を読みます。未指定なら 0 を返します。
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", "O parâmetro limit deve ser um número inteiro positivo.", "limit", model.ErrInvalidInput)
	}
	return limit, nil
}

func parseTranslationID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", "O id da tradução é inválido.", "id", model.ErrInvalidInput)
	}
	return id, nil
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	translations, err := h.sync.ListHistory(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if translations == nil {
		translations = []*model.Translation{}
	}
	logger.Info("History listed", "count", len(translations))
	webutil.RespondWithJSON(w, http.StatusOK, translations)
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	translationID, err := parseTranslationID(r)
	if err != nil {
		logger.Warn("Invalid translation ID in URL", "id", chi.URLParam(r, "id"))
		webutil.HandleError(w, logger, err)
		return
	}

	translation, err := h.sync.GetTranslation(r.Context(), userID, translationID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Translation not found", "translation_id", translationID)
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, translation)
}

func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	translationID, err := parseTranslationID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.sync.DeleteTranslation(r.Context(), userID, translationID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Translation deleted", "translation_id", translationID)
	w.WriteHeader(http.StatusNoContent)
}

// Stats はモード別・難易度別を含む集計を返します
func (h *HistoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.sync.Stats(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats)
}
