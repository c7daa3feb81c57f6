package models

import (
	"database/sql"
	"time"

	"github.com/hackdeck/hackdeck/pkg/proto"
)

// Submission is a database model for a submission.
type Submission struct {
	ID            int64                  `db:"id"`
	PublicID      string                 `db:"public_id"`
	HackathonID   int64                  `db:"hackathon_id"`
	SubmitterID   int64                  `db:"submitter_id"`
	TeamID        sql.NullInt64          `db:"team_id"`
	Title         string                 `db:"title"`
	Description   string                 `db:"description"`
	RepositoryURL string                 `db:"repository_url"`
	IsDraft       bool                   `db:"is_draft"`
	IsFinal       bool                   `db:"is_final"`
	Status        proto.SubmissionStatus `db:"status"`
	SubmittedAt   sql.NullTime           `db:"submitted_at"`
	CreatedAt     time.Time              `db:"created_at"`
	UpdatedAt     time.Time              `db:"updated_at"`
}

// SubmissionFile is a file attached to a submission. BlobPath is the
// durable storage locator and is never exposed to callers directly.
type SubmissionFile struct {
	ID           int64     `db:"id"`
	SubmissionID int64     `db:"submission_id"`
	Name         string    `db:"name"`
	BlobPath     string    `db:"blob_path"`
	Size         int64     `db:"size"`
	MimeType     string    `db:"mime_type"`
	Position     int       `db:"position"`
	CreatedAt    time.Time `db:"created_at"`
}
