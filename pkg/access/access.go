// Package access defines requester roles and their privileges.
package access

import (
	"encoding"
	"errors"
)

// Role is the platform role of a requester.
type Role int

const (
	// RoleParticipant is a regular participant.
	RoleParticipant Role = iota

	// RoleJudge reviews submissions.
	RoleJudge

	// RoleOrganizer runs hackathons.
	RoleOrganizer

	// RoleAdmin administers the platform.
	RoleAdmin
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleParticipant:
		return "participant"
	case RoleJudge:
		return "judge"
	case RoleOrganizer:
		return "organizer"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// ParseRole parses a role string.
func ParseRole(s string) Role {
	switch s {
	case "participant":
		return RoleParticipant
	case "judge":
		return RoleJudge
	case "organizer":
		return RoleOrganizer
	case "admin":
		return RoleAdmin
	default:
		return Role(-1)
	}
}

// Elevated reports whether the role may read submission files it does not
// own. Organizers, judges, and admins receive signed capability URLs.
func (r Role) Elevated() bool {
	switch r {
	case RoleOrganizer, RoleJudge, RoleAdmin:
		return true
	default:
		return false
	}
}

var (
	_ encoding.TextMarshaler   = Role(0)
	_ encoding.TextUnmarshaler = (*Role)(nil)
)

// ErrInvalidRole is returned when an invalid role is provided.
var ErrInvalidRole = errors.New("invalid role")

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	l := ParseRole(string(text))
	if l < 0 {
		return ErrInvalidRole
	}

	*r = l

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}
