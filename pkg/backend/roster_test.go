package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
	"github.com/hackdeck/hackdeck/pkg/store"
)

// TestBuildRosterCoverage seeds all three participation signals with
// overlap and drift: alice registered and submitted, bob is only a team
// member, carol submitted without ever registering.
func TestBuildRosterCoverage(t *testing.T) {
	f := submitFixture(t)
	ctx, b := f.ctx, f.b

	bob := createUser(t, ctx, b, "bob", access.RoleParticipant)
	carol := createUser(t, ctx, b, "carol", access.RoleParticipant)

	if _, err := b.CreateSubmission(ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "alice entry"}, f.subNow); err != nil {
		t.Fatal(err)
	}

	if _, err := b.CreateTeam(ctx, f.hackathon.PublicID, bob, "drifters"); err != nil {
		t.Fatal(err)
	}

	// Carol's submission bypasses the service gate: data drift the
	// reconciliation must tolerate, not reject.
	if _, err := b.store.CreateSubmission(ctx, b.db, uuid.NewString(), f.hackathon.ID, carol.ID, 0, "carol entry", "", ""); err != nil {
		t.Fatal(err)
	}

	roster, err := b.BuildRoster(ctx, f.hackathon.PublicID)
	if err != nil {
		t.Fatal(err)
	}

	if len(roster) != 3 {
		t.Fatalf("len(roster) = %d, want 3", len(roster))
	}

	byID := make(map[int64]proto.RosterEntry)
	for _, e := range roster {
		byID[e.UserID] = e
	}

	if e := byID[f.alice.ID]; !e.HasSubmission {
		t.Error("alice must have hasSubmission=true")
	}
	if e := byID[bob.ID]; e.HasSubmission {
		t.Error("bob must have hasSubmission=false")
	}
	if e := byID[carol.ID]; !e.HasSubmission {
		t.Error("carol must have hasSubmission=true")
	}
	if e := byID[carol.ID]; e.RegisteredAt.IsZero() {
		t.Error("carol must get a registeredAt from her submission")
	}
	if e := byID[bob.ID]; e.Name != "bob" || e.Email != "bob@example.com" {
		t.Errorf("bob profile = (%q, %q), want resolved name and email", e.Name, e.Email)
	}
}

// TestBuildRosterTimestampPrecedence checks that a user present in both
// registrations and submissions keeps the registration's timestamp.
func TestBuildRosterTimestampPrecedence(t *testing.T) {
	f := submitFixture(t)
	ctx, b := f.ctx, f.b

	reg, err := b.store.GetRegistration(ctx, b.db, f.hackathon.ID, f.alice.ID)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.CreateSubmission(ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "entry"}, f.subNow); err != nil {
		t.Fatal(err)
	}

	roster, err := b.BuildRoster(ctx, f.hackathon.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if len(roster) != 1 {
		t.Fatalf("len(roster) = %d, want 1", len(roster))
	}
	if !roster[0].RegisteredAt.Equal(reg.JoinedAt) {
		t.Errorf("registeredAt = %v, want registration's %v", roster[0].RegisteredAt, reg.JoinedAt)
	}
	if !roster[0].HasSubmission {
		t.Error("hasSubmission must be true")
	}
}

// TestBuildRosterIdempotent runs reconciliation twice on unchanged
// inputs and expects identical output.
func TestBuildRosterIdempotent(t *testing.T) {
	f := submitFixture(t)
	ctx, b := f.ctx, f.b

	if _, err := b.CreateSubmission(ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "entry"}, f.subNow); err != nil {
		t.Fatal(err)
	}

	first, err := b.BuildRoster(ctx, f.hackathon.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.BuildRoster(ctx, f.hackathon.PublicID)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("roster size changed: %d != %d", len(first), len(second))
	}
	for i := range first {
		if first[i].UserID != second[i].UserID ||
			first[i].HasSubmission != second[i].HasSubmission ||
			!first[i].RegisteredAt.Equal(second[i].RegisteredAt) {
			t.Errorf("entry %d differs between runs: %+v != %+v", i, first[i], second[i])
		}
	}
}

// TestBuildRosterNeverErrorsOnEmpty: reconciliation is a best-effort
// merge and returns an empty roster rather than failing.
func TestBuildRosterEmpty(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)
	h := createHackathon(t, ctx, b, organizer, schedule(time.Now().UTC()))

	roster, err := b.BuildRoster(ctx, h.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if len(roster) != 0 {
		t.Errorf("len(roster) = %d, want 0", len(roster))
	}
}

// flakyStore fails selected reads so the merge has to degrade.
type flakyStore struct {
	store.Store
	failMembers bool
	failUsers   bool
}

func (s flakyStore) GetTeamMembersByHackathon(ctx context.Context, h db.Handler, hackathonID int64) ([]models.TeamMember, error) {
	if s.failMembers {
		return nil, errors.New("members read failed")
	}
	return s.Store.GetTeamMembersByHackathon(ctx, h, hackathonID)
}

func (s flakyStore) GetUsersByIDs(ctx context.Context, h db.Handler, ids []int64) ([]models.User, error) {
	if s.failUsers {
		return nil, errors.New("users read failed")
	}
	return s.Store.GetUsersByIDs(ctx, h, ids)
}

// TestBuildRosterDegradesOnSourceFailure: a failing secondary source
// drops that signal, the roster still carries the primary one.
func TestBuildRosterDegradesOnSourceFailure(t *testing.T) {
	f := submitFixture(t)
	ctx, b := f.ctx, f.b

	b.store = flakyStore{Store: b.store, failMembers: true}

	roster, err := b.BuildRoster(ctx, f.hackathon.PublicID)
	if err != nil {
		t.Fatalf("BuildRoster() => %v, want degraded roster", err)
	}
	if len(roster) != 1 || roster[0].UserID != f.alice.ID {
		t.Fatalf("roster = %+v, want alice's registration only", roster)
	}
}

// TestBuildRosterDegradesOnProfileFailure: profile resolution failing
// yields entries without name and email instead of an error.
func TestBuildRosterDegradesOnProfileFailure(t *testing.T) {
	f := submitFixture(t)
	ctx, b := f.ctx, f.b

	b.store = flakyStore{Store: b.store, failUsers: true}
	b.cache.Delete(f.alice.ID)

	roster, err := b.BuildRoster(ctx, f.hackathon.PublicID)
	if err != nil {
		t.Fatalf("BuildRoster() => %v, want degraded roster", err)
	}
	if len(roster) != 1 {
		t.Fatalf("len(roster) = %d, want 1", len(roster))
	}
	if roster[0].Name != "" || roster[0].Email != "" {
		t.Errorf("profile = (%q, %q), want empty fields", roster[0].Name, roster[0].Email)
	}
	if roster[0].RegisteredAt.IsZero() {
		t.Error("registeredAt must survive a profile read failure")
	}
}

// TestBuildRosterLatestSubmissionWins: with several drafts the roster
// points at the most recent one.
func TestBuildRosterLatestSubmissionWins(t *testing.T) {
	f := submitFixture(t)
	ctx, b := f.ctx, f.b

	if _, err := b.CreateSubmission(ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "first draft"}, f.subNow); err != nil {
		t.Fatal(err)
	}
	second, err := b.CreateSubmission(ctx, f.hackathon.PublicID, f.alice, SubmissionInput{Title: "second draft"}, f.subNow)
	if err != nil {
		t.Fatal(err)
	}

	roster, err := b.BuildRoster(ctx, f.hackathon.PublicID)
	if err != nil {
		t.Fatal(err)
	}
	if len(roster) != 1 {
		t.Fatalf("len(roster) = %d, want 1", len(roster))
	}
	if roster[0].SubmissionID != second.PublicID {
		t.Errorf("submissionId = %q, want latest draft %q", roster[0].SubmissionID, second.PublicID)
	}
}
