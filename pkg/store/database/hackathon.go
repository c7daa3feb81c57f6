package database

import (
	"context"
	"time"

	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
	"github.com/hackdeck/hackdeck/pkg/store"
)

type hackathonStore struct{}

var _ store.HackathonStore = (*hackathonStore)(nil)

// CreateHackathon implements store.HackathonStore.
func (s *hackathonStore) CreateHackathon(ctx context.Context, tx db.Handler, publicID string, title string, description string, organizerID int64, sched proto.Schedule) (models.Hackathon, error) {
	query := tx.Rebind(`INSERT INTO hackathons (
			public_id, title, description, organizer_id, status,
			registration_start, registration_end, start_date, end_date,
			submission_deadline, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);`)
	_, err := tx.ExecContext(ctx, query, publicID, title, description, organizerID,
		proto.StatusDraft, sched.RegistrationStart, sched.RegistrationEnd,
		sched.StartDate, sched.EndDate, sched.SubmissionDeadline)
	if err != nil {
		return models.Hackathon{}, db.WrapError(err)
	}
	return s.GetHackathonByPublicID(ctx, tx, publicID)
}

// GetHackathonByID implements store.HackathonStore.
func (*hackathonStore) GetHackathonByID(ctx context.Context, tx db.Handler, id int64) (models.Hackathon, error) {
	var hackathon models.Hackathon
	query := tx.Rebind("SELECT * FROM hackathons WHERE id = ?;")
	err := tx.GetContext(ctx, &hackathon, query, id)
	return hackathon, db.WrapError(err)
}

// GetHackathonByPublicID implements store.HackathonStore.
func (*hackathonStore) GetHackathonByPublicID(ctx context.Context, tx db.Handler, publicID string) (models.Hackathon, error) {
	var hackathon models.Hackathon
	query := tx.Rebind("SELECT * FROM hackathons WHERE public_id = ?;")
	err := tx.GetContext(ctx, &hackathon, query, publicID)
	return hackathon, db.WrapError(err)
}

// GetAllHackathons implements store.HackathonStore.
func (*hackathonStore) GetAllHackathons(ctx context.Context, tx db.Handler) ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	query := tx.Rebind("SELECT * FROM hackathons ORDER BY start_date;")
	err := tx.SelectContext(ctx, &hackathons, query)
	return hackathons, db.WrapError(err)
}

// GetHackathonsByStatus implements store.HackathonStore.
func (*hackathonStore) GetHackathonsByStatus(ctx context.Context, tx db.Handler, status proto.Status) ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	query := tx.Rebind("SELECT * FROM hackathons WHERE status = ? ORDER BY start_date;")
	err := tx.SelectContext(ctx, &hackathons, query, status)
	return hackathons, db.WrapError(err)
}

// GetHackathonsByOrganizer implements store.HackathonStore.
func (*hackathonStore) GetHackathonsByOrganizer(ctx context.Context, tx db.Handler, organizerID int64) ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	query := tx.Rebind("SELECT * FROM hackathons WHERE organizer_id = ? ORDER BY start_date;")
	err := tx.SelectContext(ctx, &hackathons, query, organizerID)
	return hackathons, db.WrapError(err)
}

// SetHackathonDetails implements store.HackathonStore.
func (*hackathonStore) SetHackathonDetails(ctx context.Context, tx db.Handler, id int64, title string, description string) error {
	query := tx.Rebind(`UPDATE hackathons SET title = ?, description = ?,
			updated_at = CURRENT_TIMESTAMP WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, title, description, id)
	return db.WrapError(err)
}

// SetHackathonSchedule implements store.HackathonStore.
func (*hackathonStore) SetHackathonSchedule(ctx context.Context, tx db.Handler, id int64, sched proto.Schedule) error {
	query := tx.Rebind(`UPDATE hackathons SET registration_start = ?,
			registration_end = ?, start_date = ?, end_date = ?,
			submission_deadline = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, sched.RegistrationStart, sched.RegistrationEnd,
		sched.StartDate, sched.EndDate, sched.SubmissionDeadline, id)
	return db.WrapError(err)
}

// DeleteHackathonByID implements store.HackathonStore.
func (*hackathonStore) DeleteHackathonByID(ctx context.Context, tx db.Handler, id int64) error {
	query := tx.Rebind("DELETE FROM hackathons WHERE id = ?;")
	_, err := tx.ExecContext(ctx, query, id)
	return db.WrapError(err)
}

// SetHackathonStatus implements store.HackathonStore.
//
// The WHERE clause carries the expected current status so that two
// concurrent movers cannot both win. published_at is stamped the first
// time the hackathon leaves DRAFT and never touched again.
func (*hackathonStore) SetHackathonStatus(ctx context.Context, tx db.Handler, id int64, from proto.Status, to proto.Status) (bool, error) {
	query := tx.Rebind(`UPDATE hackathons SET status = ?,
			published_at = CASE WHEN ? AND published_at IS NULL THEN CURRENT_TIMESTAMP ELSE published_at END,
			updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND status = ?;`)
	r, err := tx.ExecContext(ctx, query, to, to == proto.StatusPublished, id, from)
	if err != nil {
		return false, db.WrapError(err)
	}

	n, err := r.RowsAffected()
	if err != nil {
		return false, db.WrapError(err)
	}

	return n > 0, nil
}

// clockRule is one time-driven lifecycle move applied by
// AdvanceHackathonsByClock.
type clockRule struct {
	from proto.Status
	to   proto.Status
	cond string
}

// clockRules are applied in lifecycle order so that a hackathon whose
// window has fully elapsed between two sweeps chains through the
// intermediate statuses within a single sweep. The first rule checks
// only the lower bound for the same reason: a hackathon must not stay
// PUBLISHED after its registration window has already closed.
var clockRules = []clockRule{
	{proto.StatusPublished, proto.StatusRegistrationOpen, "registration_start <= ?"},
	{proto.StatusRegistrationOpen, proto.StatusRegistrationClosed, "registration_end <= ?"},
	{proto.StatusRegistrationClosed, proto.StatusInProgress, "start_date <= ?"},
	{proto.StatusInProgress, proto.StatusSubmissionOpen, "submission_deadline <= ?"},
	{proto.StatusSubmissionOpen, proto.StatusSubmissionClosed, "submission_deadline < ?"},
}

// AdvanceHackathonsByClock implements store.HackathonStore.
func (*hackathonStore) AdvanceHackathonsByClock(ctx context.Context, tx db.Handler, now time.Time) (int64, error) {
	var moved int64
	for _, rule := range clockRules {
		query := tx.Rebind(`UPDATE hackathons SET status = ?,
				updated_at = CURRENT_TIMESTAMP
				WHERE status = ? AND ` + rule.cond + `;`)
		r, err := tx.ExecContext(ctx, query, rule.to, rule.from, now)
		if err != nil {
			return moved, db.WrapError(err)
		}

		n, err := r.RowsAffected()
		if err != nil {
			return moved, db.WrapError(err)
		}

		moved += n
	}

	return moved, nil
}
