package models

// Vote is one user's endorsement of one submission
type Vote struct {
	ID           int64 `json:"id" db:"id"`
	SubmissionID int64 `json:"submission_id" db:"submission_id"`
	VoterID      int64 `json:"voter_id" db:"voter_id"`
}

// RejectionReason explains why a vote was not recorded.
type RejectionReason string

const (
	RejectionNone          RejectionReason = ""
	RejectionNotFound      RejectionReason = "not_found"
	RejectionSelfVote      RejectionReason = "self_vote"
	RejectionDuplicateVote RejectionReason = "duplicate_vote"
)
