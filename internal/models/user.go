package models

// AnonymousDisplayName is shown on the leaderboard for users without a display name.
const AnonymousDisplayName = "Anonymous"

// User represents a contest participant identified by the chat platform id
type User struct {
	ID          int64  `json:"id" db:"id"`                     // Internal surrogate key
	ExternalID  int64  `json:"external_id" db:"external_id"`   // Chat platform user id, unique
	DisplayName string `json:"display_name" db:"display_name"` // Mutable username, may be empty
}

// UserInfo is a summary of one user's participation.
type UserInfo struct {
	Exists        bool   `json:"exists"`
	ExternalID    int64  `json:"external_id"`
	DisplayName   string `json:"display_name,omitempty"`
	UserID        int64  `json:"user_id,omitempty"`
	HasSubmission bool   `json:"has_submission"`
	VotesGiven    int64  `json:"votes_given"`
	SubmissionID  int64  `json:"submission_id,omitempty"`
	MediaRef      string `json:"media_ref,omitempty"`
	VotesReceived int64  `json:"votes_received"`
}
