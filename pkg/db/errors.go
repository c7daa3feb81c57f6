package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

const driverPostgres = "postgres"

const (
	driverSQLite  = "sqlite"
	driverSQLite3 = "sqlite3"
)

var (
	// ErrRecordNotFound is returned when a record is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = errors.New("record already exists")
)

// WrapError translates driver-specific errors into package sentinel errors.
// Unknown errors are returned unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}

	liteErr := &sqlite.Error{}
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY ||
			code == sqlitelib.SQLITE_CONSTRAINT_UNIQUE {
			return ErrDuplicateKey
		}
	}

	pqErr := &pq.Error{}
	if errors.As(err, &pqErr) {
		// unique_violation
		if pqErr.Code == "23505" {
			return ErrDuplicateKey
		}
	}

	return err
}
