package backend

import (
	"errors"
	"testing"
	"time"

	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/proto"
)

func TestRequestTransitionForbiddenForNonOwner(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)
	other := createUser(t, ctx, b, "other", access.RoleOrganizer)
	h := createHackathon(t, ctx, b, organizer, schedule(time.Now().UTC()))

	if _, err := b.RequestTransition(ctx, h.PublicID, other, proto.StatusPublished); !errors.Is(err, proto.ErrForbidden) {
		t.Errorf("RequestTransition() => %v, want %v", err, proto.ErrForbidden)
	}
}

func TestRequestTransitionAllowList(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)
	h := createHackathon(t, ctx, b, organizer, schedule(time.Now().UTC()))

	// DRAFT cannot jump straight to JUDGING.
	if _, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusJudging); !errors.Is(err, proto.ErrInvalidTransition) {
		t.Errorf("RequestTransition(JUDGING) => %v, want %v", err, proto.ErrInvalidTransition)
	}

	h2, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusPublished)
	if err != nil {
		t.Fatal(err)
	}
	if h2.Status != proto.StatusPublished {
		t.Errorf("status = %s, want %s", h2.Status, proto.StatusPublished)
	}
	if !h2.PublishedAt.Valid {
		t.Error("publishedAt not stamped on first publish")
	}
}

func TestPublishedAtStampedOnce(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)
	h := createHackathon(t, ctx, b, organizer, schedule(time.Now().UTC()))

	h2, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusPublished)
	if err != nil {
		t.Fatal(err)
	}
	first := h2.PublishedAt.Time

	// Unpublish and re-publish. The original stamp must survive.
	if _, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusDraft); err != nil {
		t.Fatal(err)
	}
	h3, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusPublished)
	if err != nil {
		t.Fatal(err)
	}
	if !h3.PublishedAt.Valid || !h3.PublishedAt.Time.Equal(first) {
		t.Errorf("publishedAt = %v, want original %v", h3.PublishedAt.Time, first)
	}
}

func TestCancelledFromEarlyStatuses(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)
	h := createHackathon(t, ctx, b, organizer, schedule(time.Now().UTC()))

	h2, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusCancelled)
	if err != nil {
		t.Fatal(err)
	}
	if h2.Status != proto.StatusCancelled {
		t.Errorf("status = %s, want %s", h2.Status, proto.StatusCancelled)
	}

	// Terminal: nothing moves out of CANCELLED.
	if _, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusPublished); !errors.Is(err, proto.ErrInvalidTransition) {
		t.Errorf("RequestTransition() => %v, want %v", err, proto.ErrInvalidTransition)
	}
}

func TestAdvanceByClockMonotonicity(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sched := proto.Schedule{
		RegistrationStart:  base.Add(24 * time.Hour),
		RegistrationEnd:    base.Add(48 * time.Hour),
		StartDate:          base.Add(72 * time.Hour),
		EndDate:            base.Add(120 * time.Hour),
		SubmissionDeadline: base.Add(96 * time.Hour),
	}
	h := createHackathon(t, ctx, b, organizer, sched)
	if _, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusPublished); err != nil {
		t.Fatal(err)
	}

	// Before the registration window nothing happens.
	if moved, err := b.AdvanceByClock(ctx, base); err != nil || moved != 0 {
		t.Errorf("AdvanceByClock(before) => %d, %v, want 0, nil", moved, err)
	}

	// Inside the window the hackathon opens.
	if _, err := b.AdvanceByClock(ctx, base.Add(25*time.Hour)); err != nil {
		t.Fatal(err)
	}
	h2, err := b.Hackathon(ctx, h.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if h2.Status != proto.StatusRegistrationOpen {
		t.Errorf("status = %s, want %s", h2.Status, proto.StatusRegistrationOpen)
	}

	// Past the window registration closes.
	if _, err := b.AdvanceByClock(ctx, base.Add(49*time.Hour)); err != nil {
		t.Fatal(err)
	}
	h3, err := b.Hackathon(ctx, h.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if h3.Status != proto.StatusRegistrationClosed {
		t.Errorf("status = %s, want %s", h3.Status, proto.StatusRegistrationClosed)
	}
}

func TestAdvanceByClockSkippedPoll(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sched := proto.Schedule{
		RegistrationStart:  base.Add(24 * time.Hour),
		RegistrationEnd:    base.Add(48 * time.Hour),
		StartDate:          base.Add(72 * time.Hour),
		EndDate:            base.Add(120 * time.Hour),
		SubmissionDeadline: base.Add(96 * time.Hour),
	}
	h := createHackathon(t, ctx, b, organizer, sched)
	if _, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusPublished); err != nil {
		t.Fatal(err)
	}

	// No sweep ran during the whole registration window. A single sweep
	// after it must not leave the hackathon stuck in PUBLISHED.
	if _, err := b.AdvanceByClock(ctx, base.Add(50*time.Hour)); err != nil {
		t.Fatal(err)
	}
	h2, err := b.Hackathon(ctx, h.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if h2.Status != proto.StatusRegistrationClosed {
		t.Errorf("status after skipped poll = %s, want %s", h2.Status, proto.StatusRegistrationClosed)
	}
}

func TestAdvanceByClockFullChain(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sched := proto.Schedule{
		RegistrationStart:  base.Add(24 * time.Hour),
		RegistrationEnd:    base.Add(48 * time.Hour),
		StartDate:          base.Add(72 * time.Hour),
		EndDate:            base.Add(120 * time.Hour),
		SubmissionDeadline: base.Add(96 * time.Hour),
	}
	h := createHackathon(t, ctx, b, organizer, sched)
	if _, err := b.RequestTransition(ctx, h.PublicID, organizer, proto.StatusPublished); err != nil {
		t.Fatal(err)
	}

	// Mid-event: the chain runs up to IN_PROGRESS but no further, the
	// submission deadline is still ahead.
	if _, err := b.AdvanceByClock(ctx, base.Add(80*time.Hour)); err != nil {
		t.Fatal(err)
	}
	h2, err := b.Hackathon(ctx, h.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if h2.Status != proto.StatusInProgress {
		t.Errorf("status = %s, want %s", h2.Status, proto.StatusInProgress)
	}
}
