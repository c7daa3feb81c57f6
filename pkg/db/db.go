// Package db provides database interface and connection management for
// hackdeck.
package db

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"       // postgres driver
	_ "modernc.org/sqlite"      // sqlite driver
)

// DB is the database connection.
type DB struct {
	*sqlx.DB
	logger *log.Logger
}

// Open opens a database connection.
func Open(ctx context.Context, driverName string, dsn string) (*DB, error) {
	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	// SQLite only allows a single writer. Serialize access to avoid
	// SQLITE_BUSY under concurrent request load.
	switch driverName {
	case driverSQLite, driverSQLite3:
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(8)
		db.SetMaxIdleConns(4)
		db.SetConnMaxLifetime(time.Hour)
	}

	d := &DB{
		DB: db,
	}

	if logger := log.FromContext(ctx); logger != nil {
		d.logger = logger.WithPrefix("db")
	}

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.DB.Close() //nolint:wrapcheck
}

// Tx is a database transaction.
type Tx struct {
	*sqlx.Tx
	logger *log.Logger
}

// Transaction runs the given function within a transaction, committing on
// success and rolling back on error.
func (d *DB) Transaction(fn func(tx *Tx) error) error {
	return d.TransactionContext(context.Background(), fn)
}

// TransactionContext runs the given function within a transaction using the
// given context.
func (d *DB) TransactionContext(ctx context.Context, fn func(tx *Tx) error) error {
	txx, err := d.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err //nolint:wrapcheck
	}

	tx := &Tx{Tx: txx, logger: d.logger}
	if err := fn(tx); err != nil {
		if rerr := txx.Rollback(); rerr != nil && d.logger != nil {
			d.logger.Error("rollback", "err", rerr)
		}
		return err
	}

	return txx.Commit() //nolint:wrapcheck
}
