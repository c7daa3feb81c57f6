package models

import "time"

// Team represents a team scoped to a hackathon.
type Team struct {
	ID          int64     `db:"id"`
	HackathonID int64     `db:"hackathon_id"`
	Name        string    `db:"name"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// TeamMember represents a member of a team. Membership implies
// participation even without a registration row.
type TeamMember struct {
	ID        int64     `db:"id"`
	TeamID    int64     `db:"team_id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
