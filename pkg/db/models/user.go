package models

import (
	"database/sql"
	"time"

	"github.com/hackdeck/hackdeck/pkg/access"
)

// User represents a platform user.
type User struct {
	ID        int64          `db:"id"`
	Username  string         `db:"username"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Password  sql.NullString `db:"password"`
	Role      access.Role    `db:"role"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
