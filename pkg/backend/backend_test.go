package backend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hackdeck/hackdeck/pkg/access"
	"github.com/hackdeck/hackdeck/pkg/config"
	"github.com/hackdeck/hackdeck/pkg/db"
	"github.com/hackdeck/hackdeck/pkg/db/migrate"
	"github.com/hackdeck/hackdeck/pkg/db/models"
	"github.com/hackdeck/hackdeck/pkg/proto"
	"github.com/hackdeck/hackdeck/pkg/store/database"
)

// setup returns a backend over a fresh temp SQLite database.
func setup(t *testing.T) (context.Context, *Backend) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	ctx := config.WithContext(context.TODO(), cfg)

	dbx, err := db.Open(ctx, "sqlite", filepath.Join(cfg.DataPath, "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := dbx.Close(); err != nil {
			t.Error(err)
		}
	})

	if err := migrate.Migrate(ctx, dbx); err != nil {
		t.Fatal(err)
	}

	st := database.New(ctx, dbx)
	return ctx, New(ctx, cfg, dbx, st)
}

func createUser(t *testing.T, ctx context.Context, b *Backend, username string, role access.Role) models.User {
	t.Helper()
	user, err := b.CreateUser(ctx, username, username, username+"@example.com", "hunter2", role)
	if err != nil {
		t.Fatal(err)
	}
	return user
}

// schedule returns a valid schedule whose registration window is open at
// the given instant.
func schedule(now time.Time) proto.Schedule {
	return proto.Schedule{
		RegistrationStart:  now.Add(-time.Hour),
		RegistrationEnd:    now.Add(time.Hour),
		StartDate:          now.Add(2 * time.Hour),
		EndDate:            now.Add(26 * time.Hour),
		SubmissionDeadline: now.Add(24 * time.Hour),
	}
}

func createHackathon(t *testing.T, ctx context.Context, b *Backend, organizer models.User, sched proto.Schedule) models.Hackathon {
	t.Helper()
	h, err := b.CreateHackathon(ctx, organizer, "test event", "", sched)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestCreateHackathonRejectsBadSchedule(t *testing.T) {
	ctx, b := setup(t)
	organizer := createUser(t, ctx, b, "org", access.RoleOrganizer)

	now := time.Now().UTC()
	sched := schedule(now)
	sched.RegistrationEnd = sched.RegistrationStart.Add(-time.Minute)
	if _, err := b.CreateHackathon(ctx, organizer, "bad", "", sched); !errors.Is(err, proto.ErrInvalidSchedule) {
		t.Errorf("CreateHackathon() => %v, want %v", err, proto.ErrInvalidSchedule)
	}
}

func TestCreateHackathonForbiddenForParticipants(t *testing.T) {
	ctx, b := setup(t)
	user := createUser(t, ctx, b, "alice", access.RoleParticipant)
	if _, err := b.CreateHackathon(ctx, user, "nope", "", schedule(time.Now().UTC())); !errors.Is(err, proto.ErrForbidden) {
		t.Errorf("CreateHackathon() => %v, want %v", err, proto.ErrForbidden)
	}
}
