package proto

import (
	"database/sql/driver"
	"encoding"
	"errors"
	"fmt"
)

// Status is the lifecycle status of a hackathon.
type Status string

const (
	// StatusDraft is a hackathon being edited, not yet visible.
	StatusDraft Status = "DRAFT"

	// StatusPublished is a visible hackathon awaiting registration.
	StatusPublished Status = "PUBLISHED"

	// StatusRegistrationOpen accepts registrations.
	StatusRegistrationOpen Status = "REGISTRATION_OPEN"

	// StatusRegistrationClosed no longer accepts registrations.
	StatusRegistrationClosed Status = "REGISTRATION_CLOSED"

	// StatusInProgress is a running hackathon.
	StatusInProgress Status = "IN_PROGRESS"

	// StatusSubmissionOpen accepts submissions.
	StatusSubmissionOpen Status = "SUBMISSION_OPEN"

	// StatusSubmissionClosed no longer accepts submissions.
	StatusSubmissionClosed Status = "SUBMISSION_CLOSED"

	// StatusJudging is under review by judges.
	StatusJudging Status = "JUDGING"

	// StatusCompleted is a finished hackathon. Terminal.
	StatusCompleted Status = "COMPLETED"

	// StatusCancelled is a cancelled hackathon. Terminal.
	StatusCancelled Status = "CANCELLED"
)

// Statuses lists every valid status.
var Statuses = []Status{
	StatusDraft,
	StatusPublished,
	StatusRegistrationOpen,
	StatusRegistrationClosed,
	StatusInProgress,
	StatusSubmissionOpen,
	StatusSubmissionClosed,
	StatusJudging,
	StatusCompleted,
	StatusCancelled,
}

// transitions is the fixed allow-list of status transitions. A status maps
// to the set of statuses it may move to; terminal statuses map to nothing.
var transitions = map[Status][]Status{
	StatusDraft:              {StatusPublished, StatusCancelled},
	StatusPublished:          {StatusRegistrationOpen, StatusDraft, StatusCancelled},
	StatusRegistrationOpen:   {StatusRegistrationClosed, StatusCancelled},
	StatusRegistrationClosed: {StatusInProgress, StatusCancelled},
	StatusInProgress:         {StatusSubmissionOpen, StatusCancelled},
	StatusSubmissionOpen:     {StatusSubmissionClosed, StatusCancelled},
	StatusSubmissionClosed:   {StatusJudging, StatusCancelled},
	StatusJudging:            {StatusCompleted},
	StatusCompleted:          {},
	StatusCancelled:          {},
}

// ParseStatus parses a status string.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Valid reports whether the status is a known status.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

// CanTransitionTo reports whether moving to target is in the allow-list.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// ErrInvalidStatus is returned when an unknown status string is parsed.
var ErrInvalidStatus = errors.New("invalid status")

var (
	_ encoding.TextMarshaler   = Status("")
	_ encoding.TextUnmarshaler = (*Status)(nil)
	_ driver.Valuer            = Status("")
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	st, err := ParseStatus(string(text))
	if err != nil {
		return err
	}

	*s = st

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() (text []byte, err error) {
	return []byte(s.String()), nil
}

// Value implements driver.Valuer.
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

// Scan implements sql.Scanner.
func (s *Status) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = Status(v)
	case []byte:
		*s = Status(v)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidStatus, value)
	}
	return nil
}
