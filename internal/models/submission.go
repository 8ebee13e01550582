package models

// Submission is a user's single contest entry
type Submission struct {
	ID         int64  `json:"id" db:"id"`                   // Internal id, grows with creation time
	MessageRef int64  `json:"message_ref" db:"message_ref"` // Inbound chat message id, unique
	MediaRef   string `json:"media_ref" db:"media_ref"`     // Opaque media file id, unique
	OwnerID    int64  `json:"owner_id" db:"owner_id"`       // Internal id of the submitting user
}
