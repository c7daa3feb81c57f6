package store

import (
	"context"
	"time"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// HackathonStore is an interface for managing hackathons and their
// lifecycle state.
type HackathonStore interface {
	GetHackathonByID(ctx context.Context, h db.Handler, id int64) (models.Hackathon, error)
	GetHackathonByPublicID(ctx context.Context, h db.Handler, publicID string) (models.Hackathon, error)
	GetAllHackathons(ctx context.Context, h db.Handler) ([]models.Hackathon, error)
	GetHackathonsByStatus(ctx context.Context, h db.Handler, status proto.Status) ([]models.Hackathon, error)
	GetHackathonsByOrganizer(ctx context.Context, h db.Handler, organizerID int64) ([]models.Hackathon, error)
	CreateHackathon(ctx context.Context, h db.Handler, publicID string, title string, description string, organizerID int64, sched proto.Schedule) (models.Hackathon, error)
	SetHackathonDetails(ctx context.Context, h db.Handler, id int64, title string, description string) error
	SetHackathonSchedule(ctx context.Context, h db.Handler, id int64, sched proto.Schedule) error
	DeleteHackathonByID(ctx context.Context, h db.Handler, id int64) error

	// SetHackathonStatus moves a hackathon from one lifecycle status to
	// another only if it is still in the expected status, reporting
	// whether the row was updated. The first move away from DRAFT stamps
	// published_at once.
	SetHackathonStatus(ctx context.Context, h db.Handler, id int64, from proto.Status, to proto.Status) (bool, error)

	// AdvanceHackathonsByClock applies every time-driven lifecycle move
	// that is due at the given instant, across all hackathons, and
	// returns the number of rows moved.
	AdvanceHackathonsByClock(ctx context.Context, h db.Handler, now time.Time) (int64, error)
}
