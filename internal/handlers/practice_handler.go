package handlers

import (
	"net/http"

	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/service"
	"you_translator/internal/webutil"
)

type PracticeHandler struct {
	service service.PracticeService
}

func NewPracticeHandler(s service.PracticeService) *PracticeHandler {
	return &PracticeHandler{service: s}
}

// Phrase はプロフィールの言語とレベルに合わせた出題フレーズを返します
func (h *PracticeHandler) Phrase(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	phrase, err := h.service.GeneratePhrase(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, phrase)
}

// Submit は回答を採点し、統計と履歴を更新した結果を返します
func (h *PracticeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitAttemptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode submit request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if !result.Saved {
		logger.Warn("Attempt evaluated but not saved to backend", "exercise_id", req.ExerciseID)
	}
	webutil.RespondWithJSON(w, http.StatusOK, result)
}
