package backend

import (
	"context"
	"errors"
	"time"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
)

// Register records that the user joined the hackathon. Registering again
// is a success and keeps the original joinedAt.
func (b *Backend) Register(ctx context.Context, publicID string, user models.User, now time.Time) (models.Registration, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return models.Registration{}, err
	}

	if err := checkRegisterWindow(hackathon, now); err != nil {
		return models.Registration{}, err
	}

	var reg models.Registration
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.store.CreateRegistration(ctx, tx, hackathon.ID, user.ID); err != nil {
			return err
		}
		var err error
		reg, err = b.store.GetRegistration(ctx, tx, hackathon.ID, user.ID)
		return err
	}); err != nil {
		return models.Registration{}, err
	}

	return reg, nil
}

// IsRegistered reports whether the user has a registration row for the
// hackathon.
func (b *Backend) IsRegistered(ctx context.Context, hackathonID int64, userID int64) (bool, error) {
	_, err := b.store.GetRegistration(ctx, b.db, hackathonID, userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Registrations returns every registration row for the hackathon.
func (b *Backend) Registrations(ctx context.Context, publicID string) ([]models.Registration, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return b.store.GetRegistrationsByHackathon(ctx, b.db, hackathon.ID)
}
