package backend

import (
	"context"
	"errors"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// CreateTeam creates a team under the hackathon with the creator as its
// first member.
func (b *Backend) CreateTeam(ctx context.Context, publicID string, creator models.User, name string) (models.Team, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return models.Team{}, err
	}

	var team models.Team
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		team, err = b.store.CreateTeam(ctx, tx, hackathon.ID, name)
		if err != nil {
			return err
		}
		return b.store.AddTeamMember(ctx, tx, team.ID, creator.ID)
	}); err != nil {
		return models.Team{}, err
	}

	return team, nil
}

// Teams returns the teams of a hackathon.
func (b *Backend) Teams(ctx context.Context, publicID string) ([]models.Team, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return b.store.GetTeamsByHackathon(ctx, b.db, hackathon.ID)
}

// AddTeamMember adds a user to a team. Membership implies participation
// even without a registration row.
func (b *Backend) AddTeamMember(ctx context.Context, teamID int64, user models.User) error {
	if _, err := b.store.GetTeamByID(ctx, b.db, teamID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return proto.ErrHackathonNotFound
		}
		return err
	}
	return b.store.AddTeamMember(ctx, b.db, teamID, user.ID)
}

// RemoveTeamMember removes a user from a team.
func (b *Backend) RemoveTeamMember(ctx context.Context, teamID int64, user models.User) error {
	return b.store.RemoveTeamMember(ctx, b.db, teamID, user.ID)
}
