package models

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	SubmissionID int64  `json:"submission_id" db:"submission_id"`
	DisplayName  string `json:"display_name" db:"display_name"`
	VoteCount    int64  `json:"vote_count" db:"vote_count"`
	MediaRef     string `json:"media_ref" db:"media_ref"`
}
