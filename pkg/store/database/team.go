package database

import (
	"context"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/store"
)

type teamStore struct{}

var _ store.TeamStore = (*teamStore)(nil)

// CreateTeam implements store.TeamStore.
func (*teamStore) CreateTeam(ctx context.Context, tx db.Handler, hackathonID int64, name string) (models.Team, error) {
	query := tx.Rebind(`INSERT INTO teams (hackathon_id, name, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP);`)
	if _, err := tx.ExecContext(ctx, query, hackathonID, name); err != nil {
		return models.Team{}, db.WrapError(err)
	}

	var team models.Team
	query = tx.Rebind("SELECT * FROM teams WHERE hackathon_id = ? AND name = ?;")
	err := tx.GetContext(ctx, &team, query, hackathonID, name)
	return team, db.WrapError(err)
}

// GetTeamByID implements store.TeamStore.
func (*teamStore) GetTeamByID(ctx context.Context, tx db.Handler, id int64) (models.Team, error) {
	var team models.Team
	query := tx.Rebind("SELECT * FROM teams WHERE id = ?;")
	err := tx.GetContext(ctx, &team, query, id)
	return team, db.WrapError(err)
}

// GetTeamsByHackathon implements store.TeamStore.
func (*teamStore) GetTeamsByHackathon(ctx context.Context, tx db.Handler, hackathonID int64) ([]models.Team, error) {
	var teams []models.Team
	query := tx.Rebind("SELECT * FROM teams WHERE hackathon_id = ? ORDER BY name;")
	err := tx.SelectContext(ctx, &teams, query, hackathonID)
	return teams, db.WrapError(err)
}

// DeleteTeamByID implements store.TeamStore.
func (*teamStore) DeleteTeamByID(ctx context.Context, tx db.Handler, id int64) error {
	query := tx.Rebind("DELETE FROM teams WHERE id = ?;")
	_, err := tx.ExecContext(ctx, query, id)
	return db.WrapError(err)
}

// AddTeamMember implements store.TeamStore.
func (*teamStore) AddTeamMember(ctx context.Context, tx db.Handler, teamID int64, userID int64) error {
	query := tx.Rebind(`INSERT INTO team_members (team_id, user_id)
			VALUES (?, ?)
			ON CONFLICT (team_id, user_id) DO NOTHING;`)
	_, err := tx.ExecContext(ctx, query, teamID, userID)
	return db.WrapError(err)
}

// RemoveTeamMember implements store.TeamStore.
func (*teamStore) RemoveTeamMember(ctx context.Context, tx db.Handler, teamID int64, userID int64) error {
	query := tx.Rebind("DELETE FROM team_members WHERE team_id = ? AND user_id = ?;")
	_, err := tx.ExecContext(ctx, query, teamID, userID)
	return db.WrapError(err)
}

// GetTeamMembers implements store.TeamStore.
func (*teamStore) GetTeamMembers(ctx context.Context, tx db.Handler, teamID int64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	query := tx.Rebind("SELECT * FROM team_members WHERE team_id = ?;")
	err := tx.SelectContext(ctx, &members, query, teamID)
	return members, db.WrapError(err)
}

// GetTeamMembersByHackathon implements store.TeamStore.
func (*teamStore) GetTeamMembersByHackathon(ctx context.Context, tx db.Handler, hackathonID int64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	query := tx.Rebind(`SELECT team_members.*
			FROM team_members
			INNER JOIN teams ON teams.id = team_members.team_id
			WHERE teams.hackathon_id = ?;`)
	err := tx.SelectContext(ctx, &members, query, hackathonID)
	return members, db.WrapError(err)
}
