package store

import (
	"context"

	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
)

// UserStore is an interface for managing users.
type UserStore interface {
	GetUserByID(ctx context.Context, h db.Handler, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, h db.Handler, username string) (models.User, error)
	GetUsersByIDs(ctx context.Context, h db.Handler, ids []int64) ([]models.User, error)
	GetAllUsers(ctx context.Context, h db.Handler) ([]models.User, error)
	CreateUser(ctx context.Context, h db.Handler, username string, name string, email string, passwordHash string, role access.Role) (models.User, error)
	SetUserRole(ctx context.Context, h db.Handler, id int64, role access.Role) error
	SetUserPassword(ctx context.Context, h db.Handler, id int64, passwordHash string) error
	DeleteUserByID(ctx context.Context, h db.Handler, id int64) error
}
