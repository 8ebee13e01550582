package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gif-contest/internal/models"
)

// LeaderboardReadRepository aggregates vote counts per submission
type LeaderboardReadRepository struct {
	db *sqlx.DB
}

func NewLeaderboardReadRepository(db *sqlx.DB) *LeaderboardReadRepository {
	return &LeaderboardReadRepository{db: db}
}

// Top returns up to limit submissions ranked by vote count, newest submission first on ties.
// Submissions without votes are included with a zero count. DisplayName is returned as stored.
func (r *LeaderboardReadRepository) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	const query = `
		SELECT s.id AS submission_id,
		       u.display_name AS display_name,
		       COUNT(v.id) AS vote_count,
		       s.media_ref AS media_ref
		FROM submissions s
		JOIN users u ON u.id = s.owner_id
		LEFT JOIN votes v ON v.submission_id = s.id
		GROUP BY s.id, u.display_name, s.media_ref
		ORDER BY vote_count DESC, s.id DESC
		LIMIT ?
	`

	entries := []models.LeaderboardEntry{}
	err := r.db.SelectContext(ctx, &entries, r.db.Rebind(query), limit)
	logQuery(query, []any{limit}, len(entries), err)

	if err != nil {
		return nil, fmt.Errorf("aggregate leaderboard: %w", err)
	}
	return entries, nil
}
