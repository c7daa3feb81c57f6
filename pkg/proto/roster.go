package proto

import "time"

// RosterEntry is one reconciled participant. It is derived on every roster
// request and never persisted.
type RosterEntry struct {
	UserID        int64     `json:"userId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	RegisteredAt  time.Time `json:"registeredAt"`
	HasSubmission bool      `json:"hasSubmission"`
	SubmissionID  string    `json:"submissionId,omitempty"`
}
