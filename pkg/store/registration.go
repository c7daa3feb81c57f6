package store

import (
	"context"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
)

// RegistrationStore is an interface for managing hackathon registrations.
type RegistrationStore interface {
	// CreateRegistration records that a user joined a hackathon. Calling
	// it again for the same pair is a no-op and keeps the original
	// joined_at.
	CreateRegistration(ctx context.Context, h db.Handler, hackathonID int64, userID int64) error
	GetRegistration(ctx context.Context, h db.Handler, hackathonID int64, userID int64) (models.Registration, error)
	GetRegistrationsByHackathon(ctx context.Context, h db.Handler, hackathonID int64) ([]models.Registration, error)
	CountRegistrationsByHackathon(ctx context.Context, h db.Handler, hackathonID int64) (int64, error)
	DeleteRegistration(ctx context.Context, h db.Handler, hackathonID int64, userID int64) error
}
