package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

// submitFixture creates a hackathon whose submission window covers
// subNow, with alice already registered.
func submitFixture(t *testing.T) fixture {
	t.Helper()
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)
	alice := createUser(t, ctx, b, "alice", access.RoleParticipant)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	sched := proto.Schedule{
		RegistrationStart:  base,
		RegistrationEnd:    base.Add(24 * time.Hour),
		StartDate:          base.Add(24 * time.Hour),
		EndDate:            base.Add(96 * time.Hour),
		SubmissionDeadline: base.Add(72 * time.Hour),
	}
	h := createHackathon(t, ctx, b, organizer, sched)

	regNow := base.Add(time.Hour)
	if _, err := b.Register(ctx, h.PublicID, alice, regNow); err != nil {
		t.Fatal(err)
	}

	return fixture{
		ctx:       ctx,
		b:         b,
		organizer: organizer,
		alice:     alice,
		hackathon: h,
		subNow:    base.Add(30 * time.Hour),
	}
}

type fixture struct {
	ctx       context.Context
	b         *Backend
	organizer models.User
	alice     models.User
	hackathon models.Hackathon
	subNow    time.Time
}

func TestCreateSubmissionRequiresRegistration(t *testing.T) {
	f := submitFixture(t)
	bob := createUser(t, f.ctx, f.b, "bob", access.RoleParticipant)

	_, err := f.b.CreateSubmission(f.ctx, f.hackathon.PublicID, bob, SubmissionInput{Title: "x"}, f.subNow)
	if !errors.Is(err, proto.ErrNotRegistered) {
		t.Errorf("CreateSubmission() => %v, want %v", err, proto.ErrNotRegistered)
	}
}

func TestCreateSubmissionDraftThenFinal(t *testing.T) {
	f := submitFixture(t)

	draft, err := f.b.CreateSubmission(f.ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "wip"}, f.subNow)
	if err != nil {
		t.Fatal(err)
	}
	if !draft.IsDraft || draft.IsFinal {
		t.Errorf("draft flags = (%v, %v), want (true, false)", draft.IsDraft, draft.IsFinal)
	}
	if draft.SubmittedAt.Valid {
		t.Error("submittedAt must be null while draft")
	}

	final, err := f.b.SubmitFinal(f.ctx, draft.PublicID, f.alice, f.subNow.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if !final.IsFinal || final.IsDraft {
		t.Errorf("final flags = (%v, %v), want (true, false)", final.IsFinal, final.IsDraft)
	}
	if !final.SubmittedAt.Valid {
		t.Error("submittedAt not stamped on finalization")
	}
	if final.Status != proto.SubmissionSubmitted {
		t.Errorf("status = %s, want %s", final.Status, proto.SubmissionSubmitted)
	}
}

func TestDuplicateFinalSubmission(t *testing.T) {
	f := submitFixture(t)

	if _, err := f.b.CreateSubmission(f.ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "one", Final: true}, f.subNow); err != nil {
		t.Fatal(err)
	}

	_, err := f.b.CreateSubmission(f.ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "two", Final: true}, f.subNow)
	if !errors.Is(err, proto.ErrDuplicateFinalSubmission) {
		t.Errorf("second final => %v, want %v", err, proto.ErrDuplicateFinalSubmission)
	}
}

func TestEditFinalSubmissionRefused(t *testing.T) {
	f := submitFixture(t)

	sub, err := f.b.CreateSubmission(f.ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "entry", Final: true}, f.subNow)
	if err != nil {
		t.Fatal(err)
	}

	_, err = f.b.EditSubmission(f.ctx, sub.PublicID, f.alice, SubmissionInput{Title: "changed"}, f.subNow)
	if !errors.Is(err, proto.ErrAlreadyFinal) {
		t.Errorf("EditSubmission(final) => %v, want %v", err, proto.ErrAlreadyFinal)
	}
}

func TestEditSubmissionForbiddenForStrangers(t *testing.T) {
	f := submitFixture(t)
	mallory := createUser(t, f.ctx, f.b, "mallory", access.RoleParticipant)

	sub, err := f.b.CreateSubmission(f.ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "entry"}, f.subNow)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.b.EditSubmission(f.ctx, sub.PublicID, mallory, SubmissionInput{Title: "stolen"}, f.subNow); !errors.Is(err, proto.ErrForbidden) {
		t.Errorf("EditSubmission(stranger) => %v, want %v", err, proto.ErrForbidden)
	}
}

func TestSubmitAfterDeadlineLocked(t *testing.T) {
	f := submitFixture(t)

	sub, err := f.b.CreateSubmission(f.ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "entry"}, f.subNow)
	if err != nil {
		t.Fatal(err)
	}

	late := f.hackathon.SubmissionDeadline.Add(time.Hour)
	if _, err := f.b.SubmitFinal(f.ctx, sub.PublicID, f.alice, late); !errors.Is(err, proto.ErrSubmissionLocked) {
		t.Errorf("SubmitFinal(late) => %v, want %v", err, proto.ErrSubmissionLocked)
	}
}
