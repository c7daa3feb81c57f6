package backend

import (
	"errors"
	"testing"
	"time"

	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

func windowHackathon() models.Hackathon {
	return models.Hackathon{
		RegistrationStart:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		RegistrationEnd:    time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		StartDate:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		SubmissionDeadline: time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegisterWindowBoundary(t *testing.T) {
	h := windowHackathon()

	// One second before the window closes registration still works.
	if err := checkRegisterWindow(h, time.Date(2025, 1, 9, 23, 59, 59, 0, time.UTC)); err != nil {
		t.Errorf("checkRegisterWindow(23:59:59) => %v, want nil", err)
	}

	// The end instant itself is excluded.
	if err := checkRegisterWindow(h, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)); !errors.Is(err, proto.ErrRegistrationClosed) {
		t.Errorf("checkRegisterWindow(00:00:00) => %v, want %v", err, proto.ErrRegistrationClosed)
	}

	// Before the window opens.
	if err := checkRegisterWindow(h, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)); !errors.Is(err, proto.ErrRegistrationClosed) {
		t.Errorf("checkRegisterWindow(before) => %v, want %v", err, proto.ErrRegistrationClosed)
	}

	// The start instant is included.
	if err := checkRegisterWindow(h, h.RegistrationStart); err != nil {
		t.Errorf("checkRegisterWindow(start) => %v, want nil", err)
	}
}

func TestSubmitWindowBoundary(t *testing.T) {
	h := windowHackathon()

	if err := checkSubmitWindow(h, h.StartDate.Add(-time.Second)); !errors.Is(err, proto.ErrSubmissionWindowNotOpen) {
		t.Errorf("checkSubmitWindow(before start) => %v, want %v", err, proto.ErrSubmissionWindowNotOpen)
	}

	// Both bounds of [startDate, submissionDeadline] are included.
	if err := checkSubmitWindow(h, h.StartDate); err != nil {
		t.Errorf("checkSubmitWindow(start) => %v, want nil", err)
	}
	if err := checkSubmitWindow(h, h.SubmissionDeadline); err != nil {
		t.Errorf("checkSubmitWindow(deadline) => %v, want nil", err)
	}

	if err := checkSubmitWindow(h, h.SubmissionDeadline.Add(time.Second)); !errors.Is(err, proto.ErrSubmissionLocked) {
		t.Errorf("checkSubmitWindow(after deadline) => %v, want %v", err, proto.ErrSubmissionLocked)
	}
}

func TestEditWindowFinalSubmission(t *testing.T) {
	h := windowHackathon()
	final := models.Submission{IsFinal: true, IsDraft: false}

	if err := checkEditWindow(h, final, h.StartDate); !errors.Is(err, proto.ErrAlreadyFinal) {
		t.Errorf("checkEditWindow(final) => %v, want %v", err, proto.ErrAlreadyFinal)
	}

	draft := models.Submission{IsDraft: true}
	if err := checkEditWindow(h, draft, h.StartDate); err != nil {
		t.Errorf("checkEditWindow(draft) => %v, want nil", err)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)
	alice := createUser(t, ctx, b, "alice", access.RoleParticipant)

	now := time.Now().UTC()
	h := createHackathon(t, ctx, b, organizer, schedule(now))

	first, err := b.Register(ctx, h.PublicID, alice, now)
	if err != nil {
		t.Fatal(err)
	}

	again, err := b.Register(ctx, h.PublicID, alice, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("re-registration should succeed, got %v", err)
	}
	if !again.JoinedAt.Equal(first.JoinedAt) {
		t.Errorf("joinedAt changed on re-registration: %v != %v", again.JoinedAt, first.JoinedAt)
	}

	regs, err := b.Registrations(ctx, h.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if len(regs) != 1 {
		t.Errorf("len(regs) = %d, want 1", len(regs))
	}
}

func TestRegisterOutsideWindow(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)
	alice := createUser(t, ctx, b, "alice", access.RoleParticipant)

	now := time.Now().UTC()
	h := createHackathon(t, ctx, b, organizer, schedule(now))

	if _, err := b.Register(ctx, h.PublicID, alice, now.Add(2*time.Hour)); !errors.Is(err, proto.ErrRegistrationClosed) {
		t.Errorf("Register(after window) => %v, want %v", err, proto.ErrRegistrationClosed)
	}
}
