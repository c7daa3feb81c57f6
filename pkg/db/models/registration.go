package models

import "time"

// Registration is a (hackathon, user) registration row. It is written at
// most once per pair and never updated.
type Registration struct {
	ID          int64     `db:"id"`
	HackathonID int64     `db:"hackathon_id"`
	UserID      int64     `db:"user_id"`
	JoinedAt    time.Time `db:"joined_at"`
}
