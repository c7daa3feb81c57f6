package backend

import (
	"context"

	"github.com/hackdeck/hackdeck/pkg/proto"
)

// BuildRoster merges the hackathon's three participation signals into
// one deduplicated roster. Registrations are the canonical signal; team
// memberships and submissions cover participants who never registered
// explicitly. Later passes only add entries or upgrade fields, an
// earlier pass's registeredAt is never overwritten; submissionId tracks
// the latest submission seen. Entries keep insertion order.
//
// The merge is best effort and returns every identity it discovers,
// including submitted-but-unregistered users. Callers apply their own
// display policy.
func (b *Backend) BuildRoster(ctx context.Context, publicID string) ([]proto.RosterEntry, error) {
	hackathon, err := b.Hackathon(ctx, publicID)
	if err != nil {
		return nil, err
	}

	// A source read failing drops that signal, never the roster.
	regs, err := b.store.GetRegistrationsByHackathon(ctx, b.db, hackathon.ID)
	if err != nil {
		b.logger.Warn("roster registrations unavailable", "hackathon", publicID, "err", err)
	}
	members, err := b.store.GetTeamMembersByHackathon(ctx, b.db, hackathon.ID)
	if err != nil {
		b.logger.Warn("roster team members unavailable", "hackathon", publicID, "err", err)
	}
	subs, err := b.store.GetSubmissionsByHackathon(ctx, b.db, hackathon.ID)
	if err != nil {
		b.logger.Warn("roster submissions unavailable", "hackathon", publicID, "err", err)
	}

	var order []int64
	entries := make(map[int64]*proto.RosterEntry)
	add := func(userID int64) *proto.RosterEntry {
		if e, ok := entries[userID]; ok {
			return e
		}
		e := &proto.RosterEntry{UserID: userID}
		entries[userID] = e
		order = append(order, userID)
		return e
	}

	for _, reg := range regs {
		e := add(reg.UserID)
		if e.RegisteredAt.IsZero() {
			e.RegisteredAt = reg.JoinedAt
		}
	}

	for _, m := range members {
		e := add(m.UserID)
		if e.RegisteredAt.IsZero() {
			e.RegisteredAt = m.CreatedAt
		}
	}

	for _, sub := range subs {
		e := add(sub.SubmitterID)
		if e.RegisteredAt.IsZero() {
			e.RegisteredAt = sub.CreatedAt
		}
		e.HasSubmission = true
		e.SubmissionID = sub.PublicID
	}

	users, err := b.UsersByIDs(ctx, order)
	if err != nil {
		b.logger.Warn("roster profiles unavailable", "hackathon", publicID, "err", err)
	}

	roster := make([]proto.RosterEntry, 0, len(order))
	for _, id := range order {
		e := entries[id]
		if user, ok := users[id]; ok {
			e.Name = user.Name
			e.Email = user.Email
		}
		roster = append(roster, *e)
	}

	return roster, nil
}
