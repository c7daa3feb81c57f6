package database

import (
	"context"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/store"
)

type registrationStore struct{}

var _ store.RegistrationStore = (*registrationStore)(nil)

// CreateRegistration implements store.RegistrationStore.
//
// The conflict clause makes repeat registration a no-op so the original
// joined_at survives.
func (*registrationStore) CreateRegistration(ctx context.Context, tx db.Handler, hackathonID int64, userID int64) error {
	query := tx.Rebind(`INSERT INTO registrations (hackathon_id, user_id)
			VALUES (?, ?)
			ON CONFLICT (hackathon_id, user_id) DO NOTHING;`)
	_, err := tx.ExecContext(ctx, query, hackathonID, userID)
	return db.WrapError(err)
}

// GetRegistration implements store.RegistrationStore.
func (*registrationStore) GetRegistration(ctx context.Context, tx db.Handler, hackathonID int64, userID int64) (models.Registration, error) {
	var reg models.Registration
	query := tx.Rebind("SELECT * FROM registrations WHERE hackathon_id = ? AND user_id = ?;")
	err := tx.GetContext(ctx, &reg, query, hackathonID, userID)
	return reg, db.WrapError(err)
}

// GetRegistrationsByHackathon implements store.RegistrationStore.
func (*registrationStore) GetRegistrationsByHackathon(ctx context.Context, tx db.Handler, hackathonID int64) ([]models.Registration, error) {
	var regs []models.Registration
	query := tx.Rebind("SELECT * FROM registrations WHERE hackathon_id = ? ORDER BY joined_at;")
	err := tx.SelectContext(ctx, &regs, query, hackathonID)
	return regs, db.WrapError(err)
}

// CountRegistrationsByHackathon implements store.RegistrationStore.
func (*registrationStore) CountRegistrationsByHackathon(ctx context.Context, tx db.Handler, hackathonID int64) (int64, error) {
	var count int64
	query := tx.Rebind("SELECT COUNT(*) FROM registrations WHERE hackathon_id = ?;")
	err := tx.GetContext(ctx, &count, query, hackathonID)
	return count, db.WrapError(err)
}

// DeleteRegistration implements store.RegistrationStore.
func (*registrationStore) DeleteRegistration(ctx context.Context, tx db.Handler, hackathonID int64, userID int64) error {
	query := tx.Rebind("DELETE FROM registrations WHERE hackathon_id = ? AND user_id = ?;")
	_, err := tx.ExecContext(ctx, query, hackathonID, userID)
	return db.WrapError(err)
}
