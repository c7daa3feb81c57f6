package backend

import (
	"context"
	"errors"

	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// CreateUser creates a new user. The password is hashed before it is
// stored; an empty password leaves the account without password login.
func (b *Backend) CreateUser(ctx context.Context, username string, name string, email string, password string, role access.Role) (models.User, error) {
	var passwordHash string
	if password != "" {
		hash, err := HashPassword(password)
		if err != nil {
			return models.User{}, err
		}
		passwordHash = hash
	}

	var user models.User
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		user, err = b.store.CreateUser(ctx, tx, username, name, email, passwordHash, role)
		return err
	}); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return models.User{}, proto.ErrUserExist
		}
		return models.User{}, err
	}

	b.cache.Set(user)
	return user, nil
}

// User returns the user with the given username.
func (b *Backend) User(ctx context.Context, username string) (models.User, error) {
	user, err := b.store.GetUserByUsername(ctx, b.db, username)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return models.User{}, proto.ErrUserNotFound
		}
		return models.User{}, err
	}

	b.cache.Set(user)
	return user, nil
}

// UserByID returns the user with the given ID.
func (b *Backend) UserByID(ctx context.Context, id int64) (models.User, error) {
	if user, ok := b.cache.Get(id); ok {
		return user, nil
	}

	user, err := b.store.GetUserByID(ctx, b.db, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return models.User{}, proto.ErrUserNotFound
		}
		return models.User{}, err
	}

	b.cache.Set(user)
	return user, nil
}

// UsersByIDs returns the users with the given IDs, keyed by ID. Missing
// IDs are simply absent from the result.
func (b *Backend) UsersByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error) {
	users := make(map[int64]models.User, len(ids))
	var misses []int64
	for _, id := range ids {
		if user, ok := b.cache.Get(id); ok {
			users[id] = user
		} else {
			misses = append(misses, id)
		}
	}

	if len(misses) > 0 {
		fetched, err := b.store.GetUsersByIDs(ctx, b.db, misses)
		if err != nil {
			return nil, err
		}
		for _, user := range fetched {
			users[user.ID] = user
			b.cache.Set(user)
		}
	}

	return users, nil
}

// Users returns all users.
func (b *Backend) Users(ctx context.Context) ([]models.User, error) {
	return b.store.GetAllUsers(ctx, b.db)
}

// AuthenticateUser verifies a username and password pair.
func (b *Backend) AuthenticateUser(ctx context.Context, username string, password string) (models.User, error) {
	user, err := b.User(ctx, username)
	if err != nil {
		return models.User{}, proto.ErrUserNotFound
	}

	if !user.Password.Valid || !VerifyPassword(password, user.Password.String) {
		return models.User{}, proto.ErrUserNotFound
	}

	return user, nil
}

// SetUserRole changes a user's platform role.
func (b *Backend) SetUserRole(ctx context.Context, id int64, role access.Role) error {
	if err := b.store.SetUserRole(ctx, b.db, id, role); err != nil {
		return err
	}

	b.cache.Delete(id)
	return nil
}

// DeleteUser deletes a user by username.
func (b *Backend) DeleteUser(ctx context.Context, username string) error {
	user, err := b.User(ctx, username)
	if err != nil {
		return err
	}

	if err := b.store.DeleteUserByID(ctx, b.db, user.ID); err != nil {
		return db.WrapError(err)
	}

	b.cache.Delete(user.ID)
	return nil
}

// SetUserPassword changes a user's password.
func (b *Backend) SetUserPassword(ctx context.Context, id int64, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	return b.store.SetUserPassword(ctx, b.db, id, hash)
}
