package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"you_translator/internal/model"
)

func TestHomeHandler_Home(t *testing.T) {
	userID := uuid.New()
	router, m := newMockRouter(t)
	snapshot := &model.HomeSnapshot{
		Points:        120,
		PointsSource:  model.SourceNetwork,
		Summary:       model.TranslationSummary{Total: 4, AverageScore: 7.5},
		SummarySource: model.SourceCache,
		AvatarSource:  model.SourceNone,
	}
	m.sync.On("LoadHome", mock.Anything, userID).Return(snapshot, nil).Once()

	rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/home", nil, &userID))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, *snapshot, decodeJSON[model.HomeSnapshot](t, rr.Body.Bytes()))
}

func TestHomeHandler_Leaderboard(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: ランキング", func(t *testing.T) {
		router, m := newMockRouter(t)
		entries := []model.LeaderboardEntry{
			{ID: uuid.NewString(), Name: "Bia", Level: model.ProficiencyAdvanced, Points: 300, Rank: 1},
			{ID: userID.String(), Name: "Ana", Level: model.ProficiencyBasic, Points: 120, Rank: 2},
		}
		m.leaderboard.On("GetLeaderboard", mock.Anything, userID, 10).Return(entries, nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/leaderboard?limit=10", nil, &userID))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, entries, decodeJSON[[]model.LeaderboardEntry](t, rr.Body.Bytes()))
	})

	t.Run("正常系: 結果が無ければ空配列", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.leaderboard.On("GetLeaderboard", mock.Anything, userID, 0).Return(nil, nil).Once()

		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/leaderboard", nil, &userID))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("異常系: 認証なし", func(t *testing.T) {
		router, _ := newMockRouter(t)
		rr := executeRequest(router, createRequest(t, http.MethodGet, "/api/v1/leaderboard", nil, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRouter_Health(t *testing.T) {
	router, _ := newMockRouter(t)
	// ヘルスチェックは RouterConfig.Health が無ければ登録されない
	rr := executeRequest(router, createRequest(t, http.MethodGet, "/health", nil, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
