package handlers

//go:generate mockgen -source=leaderboard.go -destination=mock_leaderboard.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gif-contest/internal/models"
)

// LeaderboardGetter returns the ranking.
type LeaderboardGetter interface {
	Leaderboard(ctx context.Context, limit int) []models.LeaderboardEntry
}

// MaxLeaderboardLimit bounds the limit query parameter.
const MaxLeaderboardLimit = 100

// NewLeaderboardHandler returns an HTTP handler serving the ranking.
// @Summary Get leaderboard
// @Description Submissions ranked by votes, newest first on ties. Owners without a name show as Anonymous.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries, 10 when omitted"
// @Success 200 {array} models.LeaderboardEntry "Leaderboard"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Router /leaderboard [get]
// @Security BearerAuth
func NewLeaderboardHandler(svc LeaderboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > MaxLeaderboardLimit {
				writeError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid limit")
				return
			}
			limit = n
		}

		writeJSON(w, http.StatusOK, svc.Leaderboard(r.Context(), limit))
	}
}
