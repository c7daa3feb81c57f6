package backend

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// editableStatus reports whether a hackathon's details and schedule may
// still be changed by its organizer. Once registration opens the dates
// are load-bearing for everyone who registered against them.
func editableStatus(status proto.Status) bool {
	return status == proto.StatusDraft || status == proto.StatusPublished
}

// canManage reports whether the actor owns the hackathon or is a
// platform admin.
func canManage(h models.Hackathon, actor models.User) bool {
	return h.OrganizerID == actor.ID || actor.Role == access.RoleAdmin
}

// CreateHackathon creates a hackathon in DRAFT owned by the actor.
func (b *Backend) CreateHackathon(ctx context.Context, actor models.User, title string, description string, sched proto.Schedule) (models.Hackathon, error) {
	if actor.Role != access.RoleOrganizer && actor.Role != access.RoleAdmin {
		return models.Hackathon{}, proto.ErrForbidden
	}

	if err := sched.Validate(); err != nil {
		return models.Hackathon{}, err
	}

	var hackathon models.Hackathon
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		hackathon, err = b.store.CreateHackathon(ctx, tx, uuid.NewString(), title, description, actor.ID, sched)
		return err
	}); err != nil {
		return models.Hackathon{}, err
	}

	b.logger.Info("hackathon created", "id", hackathon.PublicID, "organizer", actor.Username)
	return hackathon, nil
}

// Hackathon returns the hackathon with the given public ID.
func (b *Backend) Hackathon(ctx context.Context, publicID string) (models.Hackathon, error) {
	hackathon, err := b.store.GetHackathonByPublicID(ctx, b.db, publicID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return models.Hackathon{}, proto.ErrHackathonNotFound
		}
		return models.Hackathon{}, err
	}
	return hackathon, nil
}

// Hackathons returns all hackathons.
func (b *Backend) Hackathons(ctx context.Context) ([]models.Hackathon, error) {
	return b.store.GetAllHackathons(ctx, b.db)
}

// SetHackathonDetails updates the title and description.
func (b *Backend) SetHackathonDetails(ctx context.Context, publicID string, actor models.User, title string, description string) (models.Hackathon, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return models.Hackathon{}, err
	}

	if !canManage(hackathon, actor) {
		return models.Hackathon{}, proto.ErrForbidden
	}

	if err := b.store.SetHackathonDetails(ctx, b.db, hackathon.ID, title, description); err != nil {
		return models.Hackathon{}, err
	}

	return b.Hackathon(ctx, publicID)
}

// SetHackathonSchedule replaces the five-timestamp schedule. The dates
// are immutable once the hackathon has left its editable statuses.
func (b *Backend) SetHackathonSchedule(ctx context.Context, publicID string, actor models.User, sched proto.Schedule) (models.Hackathon, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return models.Hackathon{}, err
	}

	if !canManage(hackathon, actor) {
		return models.Hackathon{}, proto.ErrForbidden
	}

	if !editableStatus(hackathon.Status) {
		return models.Hackathon{}, proto.ErrHackathonStarted
	}

	if err := sched.Validate(); err != nil {
		return models.Hackathon{}, err
	}

	if err := b.store.SetHackathonSchedule(ctx, b.db, hackathon.ID, sched); err != nil {
		return models.Hackathon{}, err
	}

	return b.Hackathon(ctx, publicID)
}

// DeleteHackathon deletes a hackathon and everything under it. Deletion
// is refused once the event is running or has run.
func (b *Backend) DeleteHackathon(ctx context.Context, publicID string, actor models.User) error {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return err
	}

	if !canManage(hackathon, actor) {
		return proto.ErrForbidden
	}

	switch hackathon.Status {
	case proto.StatusDraft, proto.StatusPublished, proto.StatusRegistrationOpen,
		proto.StatusRegistrationClosed, proto.StatusCancelled:
	default:
		return proto.ErrHackathonStarted
	}

	if err := b.store.DeleteHackathonByID(ctx, b.db, hackathon.ID); err != nil {
		return err
	}

	b.logger.Info("hackathon deleted", "id", publicID, "actor", actor.Username)
	return nil
}
