package handlers

import (
	"net/http"

	"you_translator/internal/middleware"
	"you_translator/internal/model"
	"you_translator/internal/service"
	"you_translator/internal/webutil"
)

// HomeHandler はホーム画面とランキングのAPIを扱います
type HomeHandler struct {
	sync        service.SyncService
	leaderboard service.LeaderboardService
}

func NewHomeHandler(s service.SyncService, l service.LeaderboardService) *HomeHandler {
	return &HomeHandler{sync: s, leaderboard: l}
}

// Home はポイント・集計・アバターをまとめて返します
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	snapshot, err := h.sync.LoadHome(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, snapshot)
}

func (h *HomeHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
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

	entries, err := h.leaderboard.GetLeaderboard(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, entries)
}
