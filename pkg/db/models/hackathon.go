package models

import (
	"database/sql"
	"time"

	"github.com/hackdeck/hackdeck/pkg/proto"
)

// Hackathon is a database model for a hackathon.
type Hackathon struct {
	ID                 int64        `db:"id"`
	PublicID           string       `db:"public_id"`
	Title              string       `db:"title"`
	Description        string       `db:"description"`
	OrganizerID        int64        `db:"organizer_id"`
	Status             proto.Status `db:"status"`
	RegistrationStart  time.Time    `db:"registration_start"`
	RegistrationEnd    time.Time    `db:"registration_end"`
	StartDate          time.Time    `db:"start_date"`
	EndDate            time.Time    `db:"end_date"`
	SubmissionDeadline time.Time    `db:"submission_deadline"`
	PublishedAt        sql.NullTime `db:"published_at"`
	CreatedAt          time.Time    `db:"created_at"`
	UpdatedAt          time.Time    `db:"updated_at"`
}
