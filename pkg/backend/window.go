package backend

import (
	"time"

	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// The window gate is a set of pure time checks evaluated at the moment
// of the request. Nothing is locked across the check and the write that
// follows it; the partial unique indexes on submissions are the
// authoritative backstop against races.

// checkRegisterWindow permits registration while
// now ∈ [registrationStart, registrationEnd).
func checkRegisterWindow(h models.Hackathon, now time.Time) error {
	if now.Before(h.RegistrationStart) || !now.Before(h.RegistrationEnd) {
		return proto.ErrRegistrationClosed
	}
	return nil
}

// checkSubmitWindow permits submission while
// now ∈ [startDate, submissionDeadline].
func checkSubmitWindow(h models.Hackathon, now time.Time) error {
	if now.Before(h.StartDate) {
		return proto.ErrSubmissionWindowNotOpen
	}
	if now.After(h.SubmissionDeadline) {
		return proto.ErrSubmissionLocked
	}
	return nil
}

// checkEditWindow permits edits to a submission under the same upper
// bound as submitting, and never on a finalized submission.
func checkEditWindow(h models.Hackathon, s models.Submission, now time.Time) error {
	if s.IsFinal && !s.IsDraft {
		return proto.ErrAlreadyFinal
	}
	return checkSubmitWindow(h, now)
}
