package database

import (
	"context"
	"strings"

	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/store"
	"github.com/jmoiron/sqlx"
)

type userStore struct{}

var _ store.UserStore = (*userStore)(nil)

// CreateUser implements store.UserStore.
func (s *userStore) CreateUser(ctx context.Context, tx db.Handler, username string, name string, email string, passwordHash string, role access.Role) (models.User, error) {
	username = strings.ToLower(username)
	query := tx.Rebind(`INSERT INTO users (username, name, email, password, role, updated_at)
			VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP);`)
	if _, err := tx.ExecContext(ctx, query, username, name, email, passwordHash, role); err != nil {
		return models.User{}, db.WrapError(err)
	}
	return s.GetUserByUsername(ctx, tx, username)
}

// GetUserByID implements store.UserStore.
func (*userStore) GetUserByID(ctx context.Context, tx db.Handler, id int64) (models.User, error) {
	var user models.User
	query := tx.Rebind("SELECT * FROM users WHERE id = ?;")
	err := tx.GetContext(ctx, &user, query, id)
	return user, db.WrapError(err)
}

// GetUserByUsername implements store.UserStore.
func (*userStore) GetUserByUsername(ctx context.Context, tx db.Handler, username string) (models.User, error) {
	var user models.User
	username = strings.ToLower(username)
	query := tx.Rebind("SELECT * FROM users WHERE username = ?;")
	err := tx.GetContext(ctx, &user, query, username)
	return user, db.WrapError(err)
}

// GetUsersByIDs implements store.UserStore.
func (*userStore) GetUsersByIDs(ctx context.Context, tx db.Handler, ids []int64) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}

	query, args, err := sqlx.In("SELECT * FROM users WHERE id IN (?);", ids)
	if err != nil {
		return nil, db.WrapError(err)
	}

	query = tx.Rebind(query)
	err = tx.SelectContext(ctx, &users, query, args...)
	return users, db.WrapError(err)
}

// GetAllUsers implements store.UserStore.
func (*userStore) GetAllUsers(ctx context.Context, tx db.Handler) ([]models.User, error) {
	var users []models.User
	query := tx.Rebind("SELECT * FROM users;")
	err := tx.SelectContext(ctx, &users, query)
	return users, db.WrapError(err)
}

// SetUserRole implements store.UserStore.
func (*userStore) SetUserRole(ctx context.Context, tx db.Handler, id int64, role access.Role) error {
	query := tx.Rebind("UPDATE users SET role = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?;")
	_, err := tx.ExecContext(ctx, query, role, id)
	return db.WrapError(err)
}

// SetUserPassword implements store.UserStore.
func (*userStore) SetUserPassword(ctx context.Context, tx db.Handler, id int64, passwordHash string) error {
	query := tx.Rebind("UPDATE users SET password = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?;")
	_, err := tx.ExecContext(ctx, query, passwordHash, id)
	return db.WrapError(err)
}

// DeleteUserByID implements store.UserStore.
func (*userStore) DeleteUserByID(ctx context.Context, tx db.Handler, id int64) error {
	query := tx.Rebind("DELETE FROM users WHERE id = ?;")
	_, err := tx.ExecContext(ctx, query, id)
	return db.WrapError(err)
}
