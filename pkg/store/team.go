package store

import (
	"context"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
)

// TeamStore is an interface for managing teams and their members.
type TeamStore interface {
	CreateTeam(ctx context.Context, h db.Handler, hackathonID int64, name string) (models.Team, error)
	GetTeamByID(ctx context.Context, h db.Handler, id int64) (models.Team, error)
	GetTeamsByHackathon(ctx context.Context, h db.Handler, hackathonID int64) ([]models.Team, error)
	DeleteTeamByID(ctx context.Context, h db.Handler, id int64) error

	AddTeamMember(ctx context.Context, h db.Handler, teamID int64, userID int64) error
	RemoveTeamMember(ctx context.Context, h db.Handler, teamID int64, userID int64) error
	GetTeamMembers(ctx context.Context, h db.Handler, teamID int64) ([]models.TeamMember, error)
	// GetTeamMembersByHackathon returns the members of every team in the
	// hackathon, joined through the teams table.
	GetTeamMembersByHackathon(ctx context.Context, h db.Handler, hackathonID int64) ([]models.TeamMember, error)
}
