package backend

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// SubmissionInput carries the caller-editable fields of a submission.
type SubmissionInput struct {
	Title         string
	Description   string
	RepositoryURL string
	TeamID        int64
	Final         bool
}

// CreateSubmission creates a submission for the hackathon. The submitter
// must hold a registration row and the submission window must be open.
// With in.Final set the draft is finalized in the same transaction; a
// second final entry for the submitter or team fails with
// ErrDuplicateFinalSubmission.
func (b *Backend) CreateSubmission(ctx context.Context, publicID string, submitter models.User, in SubmissionInput, now time.Time) (models.Submission, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return models.Submission{}, err
	}

	registered, err := b.IsRegistered(ctx, hackathon.ID, submitter.ID)
	if err != nil {
		return models.Submission{}, err
	}
	if !registered {
		return models.Submission{}, proto.ErrNotRegistered
	}

	if err := checkSubmitWindow(hackathon, now); err != nil {
		return models.Submission{}, err
	}

	var sub models.Submission
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		sub, err = b.store.CreateSubmission(ctx, tx, uuid.NewString(), hackathon.ID, submitter.ID, in.TeamID, in.Title, in.Description, in.RepositoryURL)
		if err != nil {
			return err
		}

		if in.Final {
			if err := b.store.FinalizeSubmission(ctx, tx, sub.ID, now); err != nil {
				return err
			}
			sub, err = b.store.GetSubmissionByID(ctx, tx, sub.ID)
		}
		return err
	}); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return models.Submission{}, proto.ErrDuplicateFinalSubmission
		}
		return models.Submission{}, err
	}

	return sub, nil
}

// Submission returns the submission with the given public ID.
func (b *Backend) Submission(ctx context.Context, publicID string) (models.Submission, error) {
	sub, err := b.store.GetSubmissionByPublicID(ctx, b.db, publicID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return models.Submission{}, proto.ErrSubmissionNotFound
		}
		return models.Submission{}, err
	}
	return sub, nil
}

// Submissions returns every submission of a hackathon.
func (b *Backend) Submissions(ctx context.Context, publicID string) ([]models.Submission, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return b.store.GetSubmissionsByHackathon(ctx, b.db, hackathon.ID)
}

// canTouchSubmission reports whether the actor may modify the
// submission.
func canTouchSubmission(s models.Submission, actor models.User) bool {
	return s.SubmitterID == actor.ID || actor.Role == access.RoleAdmin
}

// EditableSubmission returns the submission if the actor may still
// modify it: the actor owns it or is an admin, it is not final, and the
// edit window is open. Callers with side effects outside the store
// (blob writes) must pass this gate before touching anything.
func (b *Backend) EditableSubmission(ctx context.Context, publicID string, actor models.User, now time.Time) (models.Submission, error) {
	sub, err := b.Submission(ctx, publicID)
	if err != nil {
		return models.Submission{}, err
	}

	if !canTouchSubmission(sub, actor) {
		return models.Submission{}, proto.ErrForbidden
	}

	hackathon, err := b.store.GetHackathonByID(ctx, b.db, sub.HackathonID)
	if err != nil {
		return models.Submission{}, err
	}

	if err := checkEditWindow(hackathon, sub, now); err != nil {
		return models.Submission{}, err
	}

	return sub, nil
}

// EditSubmission updates a draft's editable fields. Finalized
// submissions and submissions past the deadline are immutable.
func (b *Backend) EditSubmission(ctx context.Context, publicID string, actor models.User, in SubmissionInput, now time.Time) (models.Submission, error) {
	sub, err := b.EditableSubmission(ctx, publicID, actor, now)
	if err != nil {
		return models.Submission{}, err
	}

	if err := b.store.SetSubmissionDetails(ctx, b.db, sub.ID, in.Title, in.Description, in.RepositoryURL); err != nil {
		return models.Submission{}, err
	}

	return b.Submission(ctx, publicID)
}

// SubmitFinal marks an existing draft as the hackathon's final entry for
// its submitter or team.
func (b *Backend) SubmitFinal(ctx context.Context, publicID string, actor models.User, now time.Time) (models.Submission, error) {
	sub, err := b.Submission(ctx, publicID)
	if err != nil {
		return models.Submission{}, err
	}

	if !canTouchSubmission(sub, actor) {
		return models.Submission{}, proto.ErrForbidden
	}

	if sub.IsFinal {
		return models.Submission{}, proto.ErrAlreadyFinal
	}

	hackathon, err := b.store.GetHackathonByID(ctx, b.db, sub.HackathonID)
	if err != nil {
		return models.Submission{}, err
	}

	if err := checkSubmitWindow(hackathon, now); err != nil {
		return models.Submission{}, err
	}

	if err := b.store.FinalizeSubmission(ctx, b.db, sub.ID, now); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return models.Submission{}, proto.ErrDuplicateFinalSubmission
		}
		return models.Submission{}, err
	}

	return b.Submission(ctx, publicID)
}

// SubmissionFiles returns the raw file rows of a submission, in order.
func (b *Backend) SubmissionFiles(ctx context.Context, publicID string) ([]models.SubmissionFile, error) {
	sub, err := b.Submission(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return b.store.GetSubmissionFiles(ctx, b.db, sub.ID)
}

// SetSubmissionFiles replaces the ordered file list of a submission.
func (b *Backend) SetSubmissionFiles(ctx context.Context, publicID string, actor models.User, files []models.SubmissionFile, now time.Time) error {
	sub, err := b.EditableSubmission(ctx, publicID, actor, now)
	if err != nil {
		return err
	}

	return b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		return b.store.ReplaceSubmissionFiles(ctx, tx, sub.ID, files)
	})
}
