package backend

import (
	"context"
	"time"

	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// RequestTransition moves a hackathon to the target status on behalf of
// the actor. The actor must manage the hackathon and the move must be in
// the lifecycle allow-list for the current status.
//
// The status update itself is a compare-and-swap guarded by the status
// the actor saw. Losing a race against another mover, including the
// clock sweep, surfaces as ErrInvalidTransition rather than a retry.
func (b *Backend) RequestTransition(ctx context.Context, publicID string, actor models.User, target proto.Status) (models.Hackathon, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return models.Hackathon{}, err
	}

	if !canManage(hackathon, actor) {
		return models.Hackathon{}, proto.ErrForbidden
	}

	if !hackathon.Status.CanTransitionTo(target) {
		return models.Hackathon{}, proto.ErrInvalidTransition
	}

	moved, err := b.store.SetHackathonStatus(ctx, b.db, hackathon.ID, hackathon.Status, target)
	if err != nil {
		return models.Hackathon{}, err
	}
	if !moved {
		return models.Hackathon{}, proto.ErrInvalidTransition
	}

	b.logger.Info("status changed", "id", publicID, "from", hackathon.Status, "to", target, "actor", actor.Username)
	return b.Hackathon(ctx, publicID)
}

// AdvanceByClock applies every time-driven lifecycle move that is due at
// the given instant and returns the number of hackathons moved. It is
// safe to run concurrently with organizer transitions: each bulk update
// only touches rows still in its source status.
func (b *Backend) AdvanceByClock(ctx context.Context, now time.Time) (int64, error) {
	moved, err := b.store.AdvanceHackathonsByClock(ctx, b.db, now)
	if err != nil {
		return moved, err
	}

	if moved > 0 {
		b.logger.Info("lifecycle sweep", "moved", moved, "now", now.Format(time.RFC3339))
	}

	return moved, nil
}
