package models

// Event types published to the contest topic.
const (
	EventSubmissionCreated = "submission.created"
	EventVoteCast          = "vote.cast"
	EventUserDeleted       = "user.deleted"
)

// Event represents a contest domain event sent to Kafka
type Event struct {
	EventID      string `json:"event_id"`                // Unique event identifier
	Type         string `json:"type"`                    // One of the Event* constants
	Timestamp    int64  `json:"timestamp"`               // Unix seconds
	ExternalID   int64  `json:"external_id"`             // Acting user
	SubmissionID int64  `json:"submission_id,omitempty"` // Affected submission, if any
	MediaRef     string `json:"media_ref,omitempty"`
}
